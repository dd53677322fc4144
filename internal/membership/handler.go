package membership

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/platform/httputil"
	"syndicate/pkg/requestcontext"
)

// Handler wires membership endpoints to the composed service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs a membership handler with its dependencies.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts membership endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/membership/claim", h.HandleClaim)
	r.Post("/membership/invest-mint", h.HandleInvestMint)
	r.Post("/membership/commitment", h.HandleCommitment)
	r.Post("/membership/pause", h.HandlePause)
	r.Post("/membership/unpause", h.HandleUnpause)
	r.Get("/membership/identities/{id}", h.HandleGetIdentity)
	r.Get("/membership/identities/{id}/uri", h.HandleResolveURI)
	r.Put("/membership/identities/{id}/metadata", h.HandleSetMetadata)
}

// HandleClaim handles POST /membership/claim requests.
func (h *Handler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ClaimRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	identity, err := h.service.Claim(ctx, req.ParsedProof())
	if err != nil {
		h.logger.WarnContext(ctx, "claim rejected",
			"request_id", requestID,
			"claimant", requestcontext.Actor(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "membership claimed",
		"request_id", requestID,
		"identity_id", identity.ID,
		"holder", identity.Holder,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromIdentity(identity))
}

// HandleInvestMint handles POST /membership/invest-mint requests.
func (h *Handler) HandleInvestMint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[InvestMintRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	identity, err := h.service.InvestMint(ctx, req.ParsedTo())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "investor added",
		"request_id", requestID,
		"identity_id", identity.ID,
		"holder", identity.Holder,
	)
	httputil.WriteJSON(w, http.StatusOK, FromIdentity(identity))
}

// HandleCommitment handles POST /membership/commitment requests.
func (h *Handler) HandleCommitment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CommitmentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.RotateCommitment(ctx, req.ParsedRoot()); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "commitment rotated", "request_id", requestID)
	w.WriteHeader(http.StatusNoContent)
}

// HandlePause handles POST /membership/pause requests.
func (h *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Pause(r.Context()); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnpause handles POST /membership/unpause requests.
func (h *Handler) HandleUnpause(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unpause(r.Context()); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetIdentity handles GET /membership/identities/{id} requests.
func (h *Handler) HandleGetIdentity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	identity, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromIdentity(identity))
}

// HandleResolveURI handles GET /membership/identities/{id}/uri requests.
func (h *Handler) HandleResolveURI(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	uri, err := h.service.ResolveURI(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, URIResponse{URI: uri})
}

// HandleSetMetadata handles PUT /membership/identities/{id}/metadata requests.
func (h *Handler) HandleSetMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[MetadataRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	if err := h.service.SetMetadataPointer(ctx, id, req.Pointer); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (domain.IdentityID, bool) {
	id, err := domain.ParseIdentityID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "id must be a non-negative integer"))
		return 0, false
	}
	return id, true
}
