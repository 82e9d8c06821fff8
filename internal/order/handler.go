package order

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List orders, optionally filtered by processed state
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	var processed *bool
	if raw, ok := c.GetQuery("processed"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "processed must be true or false"})
			return
		}
		processed = &v
	}

	orders, err := h.service.List(processed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// Get one order
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	o, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Create order (validates items, prices, persists)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Pizzas   []string `json:"pizzas"`
		Drinks   []int    `json:"drinks"`
		Desserts []int    `json:"desserts"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.Create(req.Pizzas, req.Drinks, req.Desserts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// Update order item lists (re-prices)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req struct {
		Pizzas   []string `json:"pizzas"`
		Drinks   []int    `json:"drinks"`
		Desserts []int    `json:"desserts"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.Update(id, req.Pizzas, req.Drinks, req.Desserts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Mark order as processed
// --------------------------------------------------
func (h *Handler) MarkProcessed(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	o, err := h.service.MarkProcessed(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Override the stored total price
// --------------------------------------------------
func (h *Handler) SetTotalPrice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req struct {
		TotalPrice *float64 `json:"totalPrice"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.TotalPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "totalPrice is required"})
		return
	}

	o, err := h.service.SetTotalPrice(id, *req.TotalPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Generic field patch is gone: only processed and
// totalPrice remain patchable, as dedicated routes
// --------------------------------------------------
func (h *Handler) PatchField(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "field is not patchable; use PATCH /orders/:id/processed or /orders/:id/price",
	})
}

// --------------------------------------------------
// Delete order
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("order %d deleted", id)})
}

func respondError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.IsUnavailable(err),
		errors.Is(err, apperr.ErrEmptyOrder),
		errors.Is(err, apperr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
