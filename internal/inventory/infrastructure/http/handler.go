package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/domain"
)

// ItemStore is the administrative CRUD surface over item records. It writes
// through SetStock, never through the reservation protocol.
type ItemStore interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Lookup(ctx context.Context, key string) (domain.InventoryItem, error)
	SetStock(ctx context.Context, itemID string, stock int64) error
	Delete(ctx context.Context, itemID string) error
}

// Handler exposes item administration for the catalog team.
type Handler struct {
	log    *slog.Logger
	store  ItemStore
	tracer trace.Tracer
}

func NewHandler(log *slog.Logger, store ItemStore) *Handler {
	return &Handler{
		log:    log,
		store:  store,
		tracer: otel.Tracer("inventory-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.health)
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Get("/{itemID}", h.getItem)
		r.Put("/{itemID}", h.putItem)
		r.Delete("/{itemID}", h.deleteItem)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListItems")
	defer span.End()

	items, err := h.store.List(ctx)
	if err != nil {
		h.log.Error("list items failed", "err", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetItem")
	defer span.End()

	itemID := chi.URLParam(r, "itemID")
	item, err := h.store.Lookup(ctx, itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("get item failed", "item_id", itemID, "err", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type putItemReq struct {
	Stock int64 `json:"stock"`
}

func (h *Handler) putItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PutItem")
	defer span.End()

	var req putItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Stock < 0 {
		http.Error(w, "stock must not be negative", http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if err := h.store.SetStock(ctx, itemID, req.Stock); err != nil {
		h.log.Error("put item failed", "item_id", itemID, "err", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item_id": itemID, "stock": req.Stock})
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "DeleteItem")
	defer span.End()

	itemID := chi.URLParam(r, "itemID")
	err := h.store.Delete(ctx, itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("delete item failed", "item_id", itemID, "err", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
