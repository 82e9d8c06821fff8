package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/pizza"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := NewService(
		pizza.NewService(pizza.NewSeededRepository()),
		drink.NewService(drink.NewSeededRepository()),
		dessert.NewService(dessert.NewSeededRepository()),
	)

	r := gin.New()
	r.POST("/cart/quote", NewHandler(service).Quote)
	return r
}

func postQuote(t *testing.T, r *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/cart/quote", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := postQuote(t, r, gin.H{
		"pizzas":   []gin.H{{"id": "1", "quantity": 1}},
		"drinks":   []gin.H{{"id": 1, "quantity": 1}},
		"desserts": []gin.H{{"id": 1, "quantity": 1}},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Total != 13.95 {
		t.Errorf("expected total 13.95, got %v", resp.Total)
	}
}

func TestQuoteEndpointUnknownItem(t *testing.T) {
	r := setupTestRouter(t)

	w := postQuote(t, r, gin.H{
		"drinks": []gin.H{{"id": 99, "quantity": 1}},
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestQuoteEndpointBadQuantity(t *testing.T) {
	r := setupTestRouter(t)

	w := postQuote(t, r, gin.H{
		"drinks": []gin.H{{"id": 1, "quantity": 0}},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}
