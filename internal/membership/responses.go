package membership

import (
	"time"

	"syndicate/internal/ledger"
)

// IdentityResponse is the HTTP shape of one membership identity.
type IdentityResponse struct {
	ID              uint64    `json:"id"`
	Holder          string    `json:"holder"`
	Investor        bool      `json:"investor"`
	MetadataPointer string    `json:"metadata_pointer,omitempty"`
	MintedAt        time.Time `json:"minted_at"`
}

// URIResponse is the HTTP response for GET /membership/identities/{id}/uri.
type URIResponse struct {
	URI string `json:"uri"`
}

// FromIdentity converts a ledger identity to its HTTP shape.
func FromIdentity(identity ledger.Identity) IdentityResponse {
	return IdentityResponse{
		ID:              uint64(identity.ID),
		Holder:          identity.Holder.String(),
		Investor:        identity.Investor,
		MetadataPointer: identity.MetadataPointer,
		MintedAt:        identity.MintedAt,
	}
}
