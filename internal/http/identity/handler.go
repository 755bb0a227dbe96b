package identity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/davedmaia/hemolog/internal/http/middleware"
	"github.com/davedmaia/hemolog/internal/identity"
	"github.com/davedmaia/hemolog/internal/token"
)

type Handler struct {
	accounts *identity.Service
	tokens   *token.Manager
	auth     *middleware.Authenticator
}

func NewHandler(accounts *identity.Service, tokens *token.Manager, auth *middleware.Authenticator) *Handler {
	return &Handler{accounts: accounts, tokens: tokens, auth: auth}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.With(h.auth.RequireAuth).Get("/current", h.current)
}

// AdminRoutes are mounted behind RequireRole(admin) by the router.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/donors", h.listRole(identity.RoleDonor))
	r.Get("/hospitals", h.listRole(identity.RoleHospital))
	r.Get("/organisations", h.listRole(identity.RoleOrganisation))
	r.Delete("/accounts/{id}", h.deleteAccount)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type registerRequest struct {
	Role             identity.Role `json:"role"`
	Email            string        `json:"email"`
	Password         string        `json:"password"`
	Name             string        `json:"name,omitempty"`
	OrganisationName string        `json:"organisation_name,omitempty"`
	HospitalName     string        `json:"hospital_name,omitempty"`
	Address          string        `json:"address"`
	Phone            string        `json:"phone"`
	Website          string        `json:"website,omitempty"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.accounts.Register(r.Context(), identity.RegisterParams{
		Role:             req.Role,
		Email:            req.Email,
		Password:         req.Password,
		Name:             req.Name,
		OrganisationName: req.OrganisationName,
		HospitalName:     req.HospitalName,
		Address:          req.Address,
		Phone:            req.Phone,
		Website:          req.Website,
	})
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, identity.ErrIncompleteProfile), errors.Is(err, identity.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(account))
}

type loginRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Role     identity.Role `json:"role"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.accounts.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, identity.ErrRoleMismatch):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, identity.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	signed, err := h.tokens.Issue(account)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: signed, Account: toResponse(account)})
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	account, err := h.accounts.Get(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(account))
}

func (h *Handler) listRole(role identity.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := h.accounts.ListByRole(r.Context(), role)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toResponseList(accounts))
	}
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
