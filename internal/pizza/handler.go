package pizza

import (
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
// List all pizzas
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	pizzas, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pizzas)
}

// --------------------------------------------------
// Search pizzas by max price and/or ingredient
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	var maxPrice *float64
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a number"})
			return
		}
		maxPrice = &v
	}

	pizzas, err := h.service.Search(maxPrice, c.Query("ingredient"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pizzas)
}

// --------------------------------------------------
// Get one pizza
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Create pizza
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name"`
		Ingredients []string `json:"ingredients"`
		Price       float64  `json:"price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Create(req.Name, req.Ingredients, req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// Update pizza (partial)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Name        *string  `json:"name"`
		Ingredients []string `json:"ingredients"`
		Price       *float64 `json:"price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Param("id"), req.Name, req.Ingredients, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Delete pizza
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("pizza %s deleted", id)})
}

func respondError(c *gin.Context, err error) {
	if apperr.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
