package drink

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
// List all drinks
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	var (
		drinks []Drink
		err    error
	)
	if c.Query("available") == "true" {
		drinks, err = h.service.ListAvailable()
	} else {
		drinks, err = h.service.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drinks)
}

// --------------------------------------------------
// Get one drink
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	d, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// --------------------------------------------------
// Create drink
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Size        string  `json:"size"`
		WithAlcohol bool    `json:"withAlcohol"`
		Available   bool    `json:"available"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	d, err := h.service.Create(req.Name, req.Price, req.Size, req.WithAlcohol, req.Available)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// --------------------------------------------------
// Update drink (partial)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Size        *string  `json:"size"`
		WithAlcohol *bool    `json:"withAlcohol"`
		Available   *bool    `json:"available"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	d, err := h.service.Update(id, req.Name, req.Price, req.Size, req.WithAlcohol, req.Available)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// --------------------------------------------------
// Delete drink
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
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("drink %d deleted", id)})
}

func respondError(c *gin.Context, err error) {
	if apperr.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
