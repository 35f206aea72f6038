package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcastano/creator-store/internal/core/domain"
	"github.com/rcastano/creator-store/internal/core/service"
	"github.com/rcastano/creator-store/internal/port"
)

type HTTPHandler struct {
	catalog    port.CatalogRepository
	carts      *service.CartService
	checkout   *service.CheckoutService
	membership *service.MembershipService
}

func NewHTTPHandler(
	catalog port.CatalogRepository,
	carts *service.CartService,
	checkout *service.CheckoutService,
	membership *service.MembershipService,
) *HTTPHandler {
	return &HTTPHandler{
		catalog:    catalog,
		carts:      carts,
		checkout:   checkout,
		membership: membership,
	}
}

type toastResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type productResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Badge       string `json:"badge,omitempty"`
}

type videoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	EmbedURL    string `json:"embed_url"`
	Description string `json:"description,omitempty"`
}

type planResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

type lineItemResponse struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Badge     string `json:"badge,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type cartResponse struct {
	Items    []lineItemResponse `json:"items"`
	Total    string             `json:"total"`
	Currency string             `json:"currency"`
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type joinRequest struct {
	Email  string `json:"email"`
	PlanID string `json:"plan_id" binding:"required"`
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HTTPHandler) ListProducts(c *gin.Context) {
	products := h.catalog.Products()
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price.Amount.StringFixed(2),
			Description: p.Description,
			Badge:       p.Badge,
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": out, "currency": h.catalog.Currency().String()})
}

func (h *HTTPHandler) ListVideos(c *gin.Context) {
	videos := h.catalog.Videos()
	out := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, videoResponse{
			ID:          v.ID,
			Title:       v.Title,
			EmbedURL:    v.EmbedURL,
			Description: v.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"videos": out})
}

func (h *HTTPHandler) ListPlans(c *gin.Context) {
	plans := h.catalog.Plans()
	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.Amount.StringFixed(2),
			Description: p.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}

func (h *HTTPHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartDocument(c))
}

func (h *HTTPHandler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toastResponse{Success: false, Message: "invalid request body"})
		return
	}

	// absent quantity binds to zero and is clamped to one downstream
	h.carts.Add(sessionID(c), req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, h.cartDocument(c))
}

func (h *HTTPHandler) UpdateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toastResponse{Success: false, Message: "invalid request body"})
		return
	}

	h.carts.SetQuantity(sessionID(c), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.cartDocument(c))
}

func (h *HTTPHandler) RemoveCartItem(c *gin.Context) {
	h.carts.Remove(sessionID(c), c.Param("id"))
	c.JSON(http.StatusOK, h.cartDocument(c))
}

func (h *HTTPHandler) ClearCart(c *gin.Context) {
	h.carts.Clear(sessionID(c))
	c.JSON(http.StatusOK, h.cartDocument(c))
}

func (h *HTTPHandler) Checkout(c *gin.Context) {
	if err := h.checkout.Checkout(sessionID(c)); err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusConflict, toastResponse{Success: false, Message: "your cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, toastResponse{Success: false, Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toastResponse{Success: true, Message: "order placed, thank you"})
}

func (h *HTTPHandler) JoinMembership(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toastResponse{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.membership.Join(sessionID(c), req.Email, req.PlanID); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, toastResponse{Success: false, Message: "enter a valid email address"})
			return
		}
		c.JSON(http.StatusInternalServerError, toastResponse{Success: false, Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toastResponse{Success: true, Message: "membership added to cart"})
}

func (h *HTTPHandler) SubscribeNewsletter(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toastResponse{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.membership.Subscribe(req.Email); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, toastResponse{Success: false, Message: "enter a valid email address"})
			return
		}
		c.JSON(http.StatusInternalServerError, toastResponse{Success: false, Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toastResponse{Success: true, Message: "subscribed to the newsletter"})
}

func (h *HTTPHandler) cartDocument(c *gin.Context) cartResponse {
	return toCartResponse(h.carts.View(sessionID(c)))
}

func toCartResponse(view service.CartView) cartResponse {
	items := make([]lineItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, toLineItemResponse(item))
	}
	return cartResponse{
		Items:    items,
		Total:    view.Total.Amount.StringFixed(2),
		Currency: view.Total.Currency.String(),
	}
}

func toLineItemResponse(item domain.LineItem) lineItemResponse {
	return lineItemResponse{
		ProductID: item.ID,
		Title:     item.Title,
		Badge:     item.Badge,
		Quantity:  item.Quantity,
		UnitPrice: item.Price.Amount.StringFixed(2),
		Subtotal:  item.Subtotal.StringFixed(2),
	}
}
