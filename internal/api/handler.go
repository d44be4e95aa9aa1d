package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pharmabook/m/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store *store.Store
}

// New constructs a Handler.
func New(st *store.Store) *Handler {
	return &Handler{store: st}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.addCustomer)
		r.Get("/", h.listRecords(store.KindCustomers))
	})

	r.Route("/medicines", func(r chi.Router) {
		r.Post("/", h.addMedicine)
		r.Get("/", h.listRecords(store.KindMedicines))
	})

	r.Route("/pharmacists", func(r chi.Router) {
		r.Post("/", h.addPharmacist)
		r.Get("/", h.listRecords(store.KindPharmacists))
	})

	r.Route("/sales", func(r chi.Router) {
		r.Post("/", h.makeSale)
		r.Get("/", h.listRecords(store.KindSales))
	})

	r.Get("/records/{kind}", h.fetchRecords)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Customer handlers

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *Handler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.store.AddCustomer(r.Context(), req.Name, req.Phone, req.Address)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"customer_id": id})
}

// Medicine handlers

type medicineRequest struct {
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Price        float64 `json:"price"`
	Stock        int64   `json:"stock"`
}

func (h *Handler) addMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.store.AddMedicine(r.Context(), req.Name, req.Manufacturer, req.Price, req.Stock)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"medicine_id": id})
}

// Pharmacist handlers

type pharmacistRequest struct {
	Name  string `json:"name"`
	Shift string `json:"shift"`
}

func (h *Handler) addPharmacist(w http.ResponseWriter, r *http.Request) {
	var req pharmacistRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.store.AddPharmacist(r.Context(), req.Name, req.Shift)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"pharmacist_id": id})
}

// Sale handler

type saleRequest struct {
	CustomerID int64 `json:"customer_id"`
	MedicineID int64 `json:"medicine_id"`
	Quantity   int64 `json:"quantity"`
}

func (h *Handler) makeSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	saleID, err := h.store.MakeSale(r.Context(), req.CustomerID, req.MedicineID, req.Quantity)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"sale_id": saleID})
}

// Record browsing

func (h *Handler) fetchRecords(w http.ResponseWriter, r *http.Request) {
	h.fetch(w, r, store.Kind(chi.URLParam(r, "kind")))
}

func (h *Handler) listRecords(kind store.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.fetch(w, r, kind)
	}
}

// fetch renders all rows of a table. Browsing never fails the caller on a
// storage error; the error is logged and an empty list rendered instead.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request, kind store.Kind) {
	rows, err := h.store.Fetch(r.Context(), kind)
	if errors.Is(err, store.ErrValidation) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("unable to fetch %s: %v", kind, err)
		respondJSON(w, http.StatusOK, []any{})
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// Helpers

func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrInsufficientStock):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateKey):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "storage unavailable")
	}
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
