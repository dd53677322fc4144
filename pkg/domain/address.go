package domain

import (
	"encoding/hex"
	"strings"

	dErrors "syndicate/pkg/domain-errors"
)

// Address identifies a participant. It is a 20-byte value rendered as a
// 0x-prefixed lowercase hex string, parsed and validated at trust boundaries.
type Address [20]byte

// ZeroAddress is the null participant. It is never a valid identity holder.
var ZeroAddress Address

// ParseAddress validates and decodes a 0x-prefixed 40-hex-digit address.
func ParseAddress(s string) (Address, error) {
	raw, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok {
		return Address{}, dErrors.New(dErrors.CodeInvalidInput, "address must be 0x-prefixed")
	}
	if len(raw) != 40 {
		return Address{}, dErrors.New(dErrors.CodeInvalidInput, "address must be 20 bytes of hex")
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Address{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "address is not valid hex")
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// MustAddress parses s and panics on failure. Test fixture use only.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether a is the null address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Bytes returns the raw 20-byte value, used as Merkle leaf preimage.
func (a Address) Bytes() []byte {
	return a[:]
}

// MarshalText implements encoding.TextMarshaler for JSON round-trips.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
