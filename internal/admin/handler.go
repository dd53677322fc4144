// Package admin exposes the operator surface: role administration on the
// identity ledger and the one-shot governance handoff.
package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"syndicate/internal/handoff"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/platform/httputil"
	"syndicate/pkg/requestcontext"
)

// Handler wires the admin endpoints to the ledger role registry and the
// handoff service.
type Handler struct {
	roles   *roles.Registry
	handoff *handoff.Service
	logger  *slog.Logger
}

func NewHandler(reg *roles.Registry, h *handoff.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{roles: reg, handoff: h, logger: logger}
}

// Register mounts admin endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/roles/grant", h.HandleGrant)
	r.Post("/admin/roles/revoke", h.HandleRevoke)
	r.Get("/admin/roles/has", h.HandleHas)
	r.Post("/admin/handoff/finalize", h.HandleFinalize)
}

// RoleRequest is the HTTP request body for grant and revoke. Role accepts a
// well-known name ("pauser") or a raw hex identifier.
type RoleRequest struct {
	Role   string `json:"role"`
	Holder string `json:"holder"`

	parsedRole   domain.RoleID
	parsedHolder domain.Address
}

func (r *RoleRequest) Validate() error {
	role, err := parseRole(r.Role)
	if err != nil {
		return err
	}
	holder, err := domain.ParseAddress(strings.TrimSpace(r.Holder))
	if err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "holder must be a 0x-prefixed 20-byte hex address")
	}
	r.parsedRole = role
	r.parsedHolder = holder
	return nil
}

// HandleGrant handles POST /admin/roles/grant requests.
func (h *Handler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	h.handleRoleChange(w, r, h.roles.Grant)
}

// HandleRevoke handles POST /admin/roles/revoke requests.
func (h *Handler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	h.handleRoleChange(w, r, h.roles.Revoke)
}

// HandleHas handles GET /admin/roles/has requests.
func (h *Handler) HandleHas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, err := parseRole(r.URL.Query().Get("role"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	holder, err := domain.ParseAddress(r.URL.Query().Get("holder"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "holder must be a 0x-prefixed 20-byte hex address"))
		return
	}

	held, err := h.roles.Has(ctx, role, holder)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"has": held})
}

// HandleFinalize handles POST /admin/handoff/finalize requests.
func (h *Handler) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if err := h.handoff.Finalize(ctx); err != nil {
		h.logger.WarnContext(ctx, "handoff finalize rejected",
			"request_id", requestID,
			"actor", requestcontext.Actor(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "handoff finalized", "request_id", requestID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRoleChange(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, role domain.RoleID, holder domain.Address) error,
) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RoleRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := apply(ctx, req.parsedRole, req.parsedHolder); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "role change applied",
		"request_id", requestID,
		"role", req.parsedRole.Name(),
		"holder", req.parsedHolder,
		"actor", requestcontext.Actor(ctx),
	)
	w.WriteHeader(http.StatusNoContent)
}

func parseRole(s string) (domain.RoleID, error) {
	s = strings.TrimSpace(s)
	if role, ok := domain.RoleByName(s); ok {
		return role, nil
	}
	role, err := domain.ParseRoleID(s)
	if err != nil {
		return domain.RoleID{}, dErrors.New(dErrors.CodeBadRequest, "role must be a known name or a 0x-prefixed 32-byte hex identifier")
	}
	return role, nil
}
