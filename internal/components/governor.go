package components

import (
	"syndicate/pkg/domain"
)

// VotingBody is a governance body bound to one voting token and one
// treasury. Proposal and voting mechanics live elsewhere; the registry only
// needs its identity.
type VotingBody struct {
	name       string
	addr       domain.Address
	boundToken domain.Address
	treasury   domain.Address
	settings   GovernorSettings
}

func NewVotingBody(name string, boundToken, treasury domain.Address, settings GovernorSettings) *VotingBody {
	return &VotingBody{
		name:       name,
		addr:       componentAddress("governor." + name),
		boundToken: boundToken,
		treasury:   treasury,
		settings:   settings,
	}
}

func (g *VotingBody) Name() string                { return g.name }
func (g *VotingBody) Address() domain.Address     { return g.addr }
func (g *VotingBody) BoundToken() domain.Address  { return g.boundToken }
func (g *VotingBody) TreasuryRef() domain.Address { return g.treasury }
func (g *VotingBody) Settings() GovernorSettings  { return g.settings }
