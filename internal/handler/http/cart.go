package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// CartHandler serves the cart endpoints. Owners are resolved per request
// from the JWT or the guest session header.
type CartHandler struct {
	cart   *service.CartService
	logger *slog.Logger
}

func NewCartHandler(cart *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: logger}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// updateQuantityRequest carries no validation tags on purpose: quantities
// below one are a documented no-op, not a client error.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse decorates the cart with its derived totals, recomputed on
// every read.
type cartResponse struct {
	*domain.Cart
	TotalItems int   `json:"total_items"`
	TotalPrice int64 `json:"total_price"`
}

func newCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		Cart:       cart,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := cartOwner(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	cart, err := h.cart.GetCart(r.Context(), owner)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartResponse(cart)})
}

// AddItem handles POST /cart/items. Quantity defaults to one when omitted.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	owner, err := cartOwner(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req addItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cart.AddItem(r.Context(), owner, req.ProductID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartResponse(cart)})
}

// UpdateQuantity handles PUT /cart/items/{productId}. Quantities below one
// and products not in the cart leave it unchanged.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	owner, err := cartOwner(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req updateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.cart.UpdateQuantity(r.Context(), owner, chi.URLParam(r, "productId"), req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartResponse(cart)})
}

// RemoveItem handles DELETE /cart/items/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	owner, err := cartOwner(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	cart, err := h.cart.RemoveItem(r.Context(), owner, chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartResponse(cart)})
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	owner, err := cartOwner(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	cart, err := h.cart.ClearCart(r.Context(), owner)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartResponse(cart)})
}
