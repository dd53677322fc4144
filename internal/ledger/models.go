// Package ledger implements the identity ownership ledger: a monotonically
// numbered set of membership identities, each owned by exactly one address.
//
// The ledger is assembled from explicit capability hooks rather than an
// inheritance chain: transfer passes through validation, then the transfer
// guard hook, then the mutation, then audit, in that order.
package ledger

import (
	"time"

	"syndicate/pkg/domain"
)

// Identity is one membership record. ID is immutable once minted; Holder is
// reassigned only by transfer. A burned ID is never reassigned.
type Identity struct {
	ID              domain.IdentityID `json:"id"`
	Holder          domain.Address    `json:"holder"`
	Investor        bool              `json:"investor"`
	MetadataPointer string            `json:"metadata_pointer,omitempty"`
	MintedAt        time.Time         `json:"minted_at"`
}
