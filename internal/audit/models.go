// Package audit captures the registry's auditable events: every effective
// role change, claim, investor addition, commitment rotation, pause
// transition, and the one-shot governance handoff.
package audit

import (
	"time"

	"github.com/google/uuid"

	"syndicate/pkg/attrs"
	"syndicate/pkg/domain"
)

// Kind enumerates auditable actions.
type Kind string

const (
	EventRoleGranted        Kind = "role.granted"
	EventRoleRevoked        Kind = "role.revoked"
	EventCommitmentRotated  Kind = "commitment.rotated"
	EventMembershipClaimed  Kind = "membership.claimed"
	EventInvestorAdded      Kind = "membership.investor_added"
	EventTransfersPaused    Kind = "transfers.paused"
	EventTransfersUnpaused  Kind = "transfers.unpaused"
	EventIdentityBurned     Kind = "identity.burned"
	EventIdentityTransfered Kind = "identity.transferred"
	EventHandoffFinalized   Kind = "handoff.finalized"
)

// Event is one audit record. Component distinguishes which role table a role
// change applied to (ledger, equity, treasury). Attrs carries free-form
// slog-style key-value pairs.
type Event struct {
	ID        uuid.UUID      `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Kind      Kind           `json:"kind"`
	Component string         `json:"component,omitempty"`
	Actor     domain.Address `json:"actor"`
	Subject   domain.Address `json:"subject,omitempty"`
	Role      string         `json:"role,omitempty"`
	Identity  string         `json:"identity,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Attrs     []any          `json:"-"`
}

// Attr extracts a string attribute from the event's key-value pairs.
func (e Event) Attr(key string) string {
	return attrs.ExtractString(e.Attrs, key)
}

// AttrMap flattens the slog-style pairs for serialization.
func (e Event) AttrMap() map[string]string {
	if len(e.Attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Attrs)/2)
	for i := 0; i < len(e.Attrs)-1; i += 2 {
		k, ok := e.Attrs[i].(string)
		if !ok {
			continue
		}
		if v := attrs.ExtractString(e.Attrs, k); v != "" {
			out[k] = v
		}
	}
	return out
}
