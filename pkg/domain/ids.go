package domain

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"

	dErrors "syndicate/pkg/domain-errors"
)

// IdentityID numbers a membership identity. IDs are assigned from a strictly
// increasing counter starting at 0 and are never reused after a burn.
type IdentityID uint64

func (id IdentityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseIdentityID decodes a decimal identity number.
func ParseIdentityID(s string) (IdentityID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "identity id must be a decimal integer")
	}
	return IdentityID(n), nil
}

// RoleID names a capability. Role identifiers are 32-byte digests derived
// from stable role names so they compare equal across components without a
// shared registry. The administrator role is the all-zero digest.
type RoleID [32]byte

// DeriveRoleID hashes a stable role name into its identifier.
func DeriveRoleID(name string) RoleID {
	return RoleID(sha3.Sum256([]byte("syndicate.role." + name)))
}

// Well-known roles. RoleAdministrator is deliberately the zero digest and is
// self-administering; the rest are granted and revoked under its authority.
var (
	RoleAdministrator RoleID
	RolePauser        = DeriveRoleID("pauser")
	RoleInviter       = DeriveRoleID("inviter")
	RoleBurner        = DeriveRoleID("burner")
	RoleMinter        = DeriveRoleID("minter")
	RoleProposer      = DeriveRoleID("proposer")
	RoleTimelockAdmin = DeriveRoleID("timelock-admin")
)

func (r RoleID) String() string {
	return "0x" + hex.EncodeToString(r[:])
}

// ParseRoleID decodes a 0x-prefixed 32-byte hex role identifier.
func ParseRoleID(s string) (RoleID, error) {
	raw, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || len(raw) != 64 {
		return RoleID{}, dErrors.New(dErrors.CodeInvalidInput, "role id must be 0x-prefixed 32-byte hex")
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return RoleID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "role id is not valid hex")
	}
	var r RoleID
	copy(r[:], b)
	return r, nil
}

// roleNames maps well-known role identifiers back to names for logs and the
// admin API. Unknown roles render as hex.
var roleNames = map[RoleID]string{
	RoleAdministrator: "administrator",
	RolePauser:        "pauser",
	RoleInviter:       "inviter",
	RoleBurner:        "burner",
	RoleMinter:        "minter",
	RoleProposer:      "proposer",
	RoleTimelockAdmin: "timelock-admin",
}

// Name returns the well-known name for r, or its hex form.
func (r RoleID) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return r.String()
}

// RoleByName resolves a well-known role name. The admin API accepts either
// names or raw hex identifiers.
func RoleByName(name string) (RoleID, bool) {
	for r, n := range roleNames {
		if n == name {
			return r, true
		}
	}
	return RoleID{}, false
}

// Digest is a 32-byte commitment value (the whitelist Merkle root).
type Digest [32]byte

// ParseDigest decodes a 0x-prefixed 32-byte hex digest.
func ParseDigest(s string) (Digest, error) {
	raw, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || len(raw) != 64 {
		return Digest{}, dErrors.New(dErrors.CodeInvalidInput, "digest must be 0x-prefixed 32-byte hex")
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Digest{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "digest is not valid hex")
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

func (d Digest) String() string {
	return "0x" + hex.EncodeToString(d[:])
}

// IsZero reports whether no commitment has been set.
func (d Digest) IsZero() bool {
	return d == Digest{}
}
