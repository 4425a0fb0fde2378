package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/simstore/build-advisor/internal/models"
)

// Product handlers

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.repo.ListProducts(r.Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.repo.ListCategories(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"total":      len(categories),
	})
}

func (s *Server) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}

	products, err := s.repo.ListProductsByCategory(r.Context(), category)
	if err != nil {
		slog.Error("failed to list products by category", "error", err, "category", category)
		respondError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

// Cart handlers

type addCartItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.ProductID == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "product_id and name are required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	item := &models.CartItem{
		ID:        uuid.New().String(),
		UserID:    UserIDFromContext(r.Context()),
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		AddedAt:   time.Now().UTC(),
	}

	if err := s.repo.AddCartItem(r.Context(), item); err != nil {
		slog.Error("failed to add cart item", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to add cart item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	items, err := s.repo.GetCartItems(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		slog.Error("failed to get cart", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get cart")
		return
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

func (s *Server) handleDeleteCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "cart item id is required")
		return
	}

	if err := s.repo.DeleteCartItem(r.Context(), id); err != nil {
		respondError(w, http.StatusNotFound, "cart item not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "cart item deleted",
	})
}

// Order handlers

type createOrderRequest struct {
	Items []models.OrderItem `json:"items"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	var total float64
	for _, item := range req.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    UserIDFromContext(r.Context()),
		Items:     req.Items,
		Total:     total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateOrder(r.Context(), order); err != nil {
		slog.Error("failed to create order", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.GetOrdersByUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"total":  len(orders),
	})
}
