package membership

import (
	"strings"

	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
)

// ClaimRequest is the HTTP request body for POST /membership/claim.
type ClaimRequest struct {
	Proof []string `json:"proof"`

	parsedProof []domain.Digest
}

// Validate parses the proof path. An empty proof is legal (single-leaf
// tree), so only malformed digests are rejected here.
func (r *ClaimRequest) Validate() error {
	if len(r.Proof) > 64 {
		return dErrors.New(dErrors.CodeBadRequest, "proof path is implausibly long")
	}
	r.parsedProof = make([]domain.Digest, 0, len(r.Proof))
	for _, raw := range r.Proof {
		d, err := domain.ParseDigest(raw)
		if err != nil {
			return dErrors.New(dErrors.CodeBadRequest, "proof contains a malformed digest")
		}
		r.parsedProof = append(r.parsedProof, d)
	}
	return nil
}

// ParsedProof returns the proof path parsed by Validate.
func (r *ClaimRequest) ParsedProof() []domain.Digest { return r.parsedProof }

// InvestMintRequest is the HTTP request body for POST /membership/invest-mint.
type InvestMintRequest struct {
	To string `json:"to"`

	parsedTo domain.Address
}

func (r *InvestMintRequest) Validate() error {
	to, err := domain.ParseAddress(strings.TrimSpace(r.To))
	if err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "to must be a 0x-prefixed 20-byte hex address")
	}
	r.parsedTo = to
	return nil
}

// ParsedTo returns the recipient parsed by Validate.
func (r *InvestMintRequest) ParsedTo() domain.Address { return r.parsedTo }

// CommitmentRequest is the HTTP request body for POST /membership/commitment.
type CommitmentRequest struct {
	Root string `json:"root"`

	parsedRoot domain.Digest
}

func (r *CommitmentRequest) Validate() error {
	root, err := domain.ParseDigest(strings.TrimSpace(r.Root))
	if err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "root must be a 32-byte hex digest")
	}
	r.parsedRoot = root
	return nil
}

// ParsedRoot returns the commitment root parsed by Validate.
func (r *CommitmentRequest) ParsedRoot() domain.Digest { return r.parsedRoot }

// MetadataRequest is the HTTP request body for
// PUT /membership/identities/{id}/metadata.
type MetadataRequest struct {
	Pointer string `json:"pointer"`
}

func (r *MetadataRequest) Validate() error {
	if strings.TrimSpace(r.Pointer) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "pointer is required")
	}
	if len(r.Pointer) > 8192 {
		return dErrors.New(dErrors.CodeBadRequest, "pointer must be at most 8192 bytes")
	}
	return nil
}
