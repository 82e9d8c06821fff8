package order

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
		NewInMemoryRepository(),
		pizza.NewService(pizza.NewSeededRepository()),
		drink.NewService(drink.NewSeededRepository()),
		dessert.NewService(dessert.NewSeededRepository()),
	)
	handler := NewHandler(service)

	r := gin.New()
	r.GET("/orders", handler.List)
	r.GET("/orders/:id", handler.Get)
	r.POST("/orders", handler.Create)
	r.PUT("/orders/:id", handler.Update)
	r.PATCH("/orders/:id/processed", handler.MarkProcessed)
	r.PATCH("/orders/:id/price", handler.SetTotalPrice)
	r.PATCH("/orders/:id", handler.PatchField)
	r.DELETE("/orders/:id", handler.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderSuccess(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"pizzas":   []string{"1"},
		"drinks":   []int{1},
		"desserts": []int{1},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var o Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if o.TotalPrice != 13.95 {
		t.Errorf("expected total 13.95, got %v", o.TotalPrice)
	}
}

func TestCreateOrderUnknownDrink(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"pizzas": []string{"1"},
		"drinks": []int{99},
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}

	list := doJSON(t, r, http.MethodGet, "/orders", nil)
	if list.Body.String() != "[]" {
		t.Errorf("no order must be persisted after a failed create, got %s", list.Body.String())
	}
}

func TestCreateOrderUnavailableDessert(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"pizzas":   []string{"1"},
		"desserts": []int{5},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateEmptyOrder(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGenericPatchRejected(t *testing.T) {
	r := setupTestRouter(t)

	doJSON(t, r, http.MethodPost, "/orders", gin.H{"pizzas": []string{"1"}})

	w := doJSON(t, r, http.MethodPatch, "/orders/1?field=totalPrice&value=0", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for generic patch, got %d", w.Code)
	}
}

func TestMarkProcessedEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	doJSON(t, r, http.MethodPost, "/orders", gin.H{"pizzas": []string{"1"}})

	w := doJSON(t, r, http.MethodPatch, "/orders/1/processed", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var o Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !o.Processed {
		t.Error("order should be processed")
	}
}

func TestListOrdersBadFilter(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/orders?processed=maybe", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/orders/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
