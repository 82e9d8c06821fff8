package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Full menu (all three catalogs)
// --------------------------------------------------
func (h *Handler) GetFullMenu(c *gin.Context) {
	m, err := h.service.GetFullMenu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// One catalog by category name
// --------------------------------------------------
func (h *Handler) GetByCategory(c *gin.Context) {
	category := c.Param("category")

	items, ok, err := h.service.GetByCategory(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category: " + category})
		return
	}
	c.JSON(http.StatusOK, items)
}
