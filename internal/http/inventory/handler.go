package inventory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/davedmaia/hemolog/internal/http/middleware"
	"github.com/davedmaia/hemolog/internal/identity"
	"github.com/davedmaia/hemolog/internal/inventory"
)

// defaultRecentLimit matches the dashboard's "last few records" panel.
const defaultRecentLimit = 3

type Handler struct {
	ledger   *inventory.Service
	accounts *identity.Service
}

func NewHandler(ledger *inventory.Service, accounts *identity.Service) *Handler {
	return &Handler{ledger: ledger, accounts: accounts}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(middleware.RequireRole(identity.RoleOrganisation)).Group(func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/recent", h.recent)
		r.Get("/availability", h.availability)
		r.Get("/summary", h.summary)
		r.Get("/donors", h.donors)
		r.Get("/hospitals", h.hospitals)
	})

	r.With(middleware.RequireRole(identity.RoleDonor, identity.RoleHospital)).
		Get("/organisations", h.organisations)
}

type createTransactionRequest struct {
	Direction      inventory.Direction  `json:"direction"`
	BloodGroup     inventory.BloodGroup `json:"blood_group"`
	Quantity       int64                `json:"quantity"`
	CounterpartyID uuid.UUID            `json:"counterparty_id"`
	ContactEmail   string               `json:"contact_email"`
}

type insufficientStockResponse struct {
	Error      string               `json:"error"`
	BloodGroup inventory.BloodGroup `json:"blood_group"`
	Requested  int64                `json:"requested"`
	Available  int64                `json:"available"`
}

// writeError maps engine errors to status codes: bad input 400, unknown
// counterparty 404, insufficient stock 409 (with the available amount),
// storage outage 503.
func writeError(w http.ResponseWriter, err error) {
	var stockErr *inventory.InsufficientStockError
	if errors.As(err, &stockErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		resp := insufficientStockResponse{
			Error:      stockErr.Error(),
			BloodGroup: stockErr.BloodGroup,
			Requested:  stockErr.Requested,
			Available:  stockErr.Available,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	switch {
	case errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrInvalidBloodGroup),
		errors.Is(err, inventory.ErrInvalidDirection),
		errors.Is(err, inventory.ErrMissingCounterparty),
		errors.Is(err, inventory.ErrInvalidLimit),
		errors.Is(err, inventory.ErrInvalidRole):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, inventory.ErrCounterpartyNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, inventory.ErrStorageUnavailable):
		http.Error(w, "storage unavailable, retry later", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.ledger.Append(r.Context(), inventory.AppendParams{
		OrganisationID: claims.AccountID,
		Direction:      req.Direction,
		BloodGroup:     req.BloodGroup,
		Quantity:       req.Quantity,
		CounterpartyID: req.CounterpartyID,
		ContactEmail:   req.ContactEmail,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	filter := inventory.ListFilter{}

	if s := r.URL.Query().Get("direction"); s != "" {
		d := inventory.Direction(s)
		filter.Direction = &d
	}

	if s := r.URL.Query().Get("blood_group"); s != "" {
		g := inventory.BloodGroup(s)
		filter.BloodGroup = &g
	}

	if s := r.URL.Query().Get("counterparty"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid counterparty id", http.StatusBadRequest)
			return
		}

		filter.Counterparty = &id
	}

	txs, err := h.ledger.List(r.Context(), claims.AccountID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	limit := defaultRecentLimit

	if s := r.URL.Query().Get("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = parsed
	}

	txs, err := h.ledger.ListRecent(r.Context(), claims.AccountID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

type availabilityResponse struct {
	BloodGroup inventory.BloodGroup `json:"blood_group"`
	Available  int64                `json:"available"`
}

func (h *Handler) availability(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	group := inventory.BloodGroup(r.URL.Query().Get("blood_group"))

	available, err := h.ledger.Availability(r.Context(), claims.AccountID, group)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{BloodGroup: group, Available: available})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	summary, err := h.ledger.AvailabilitySummary(r.Context(), claims.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) donors(w http.ResponseWriter, r *http.Request) {
	h.counterparties(w, r, inventory.RoleDonor)
}

func (h *Handler) hospitals(w http.ResponseWriter, r *http.Request) {
	h.counterparties(w, r, inventory.RoleHospital)
}

// counterparties lists the accounts behind the ledger's distinct donor or
// hospital ids for the calling organisation.
func (h *Handler) counterparties(w http.ResponseWriter, r *http.Request, role inventory.CounterpartyRole) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	ids, err := h.ledger.DistinctCounterparties(r.Context(), claims.AccountID, role)
	if err != nil {
		writeError(w, err)
		return
	}

	accounts, err := h.accounts.Resolve(r.Context(), ids)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAccountList(accounts))
}

// organisations is the inverse view: the organisations the calling donor has
// donated to, or the calling hospital has received from.
func (h *Handler) organisations(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	role := inventory.RoleDonor
	if claims.Role == identity.RoleHospital {
		role = inventory.RoleHospital
	}

	ids, err := h.ledger.OrganisationsLinkedTo(r.Context(), claims.AccountID, role)
	if err != nil {
		writeError(w, err)
		return
	}

	accounts, err := h.accounts.Resolve(r.Context(), ids)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAccountList(accounts))
}
