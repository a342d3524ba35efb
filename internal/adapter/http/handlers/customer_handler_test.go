package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase"
	"phone_repair/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCustomerRouter(uc usecase.ICustomerUseCase) *gin.Engine {
	h := NewCustomerHandler(uc, nil)
	r := gin.New()
	r.POST("/customers", h.RegisterCustomer)
	r.GET("/customers", h.ListCustomers)
	r.GET("/customers/:name", h.GetCustomer)
	r.DELETE("/customers/:name", h.DeleteCustomer)
	return r
}

func TestCustomerHandler_RegisterCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrInvalidCustomerName)

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(`{"phone":"81 9999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("legacy keys are mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().Register(gomock.Any(), entities.Customer{Name: " joão silva", Phone: "81 9999", City: "Recife"}).
			Return(entities.Customer{ID: 1, Name: "JOÃO SILVA", Phone: "81 9999", City: "Recife"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(`{"nome":" joão silva","telefone":"81 9999","cidade":"Recife"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Message  string `json:"message"`
			Customer struct {
				Name string `json:"name"`
				City string `json:"city"`
			} `json:"customer"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Customer.Name != "JOÃO SILVA" || body.Customer.City != "Recife" || body.Message == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("disk full"))

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(`{"name":"ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("disk full")) {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	r := newCustomerRouter(uc)

	uc.EXPECT().ListAll(gomock.Any()).Return([]entities.Customer{{ID: 1, Name: "ANA"}, {ID: 2, Name: "BIA"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(body))
	}
	if _, ok := body[0]["id"]; ok {
		t.Fatalf("id must not be exposed: %s", w.Body.String())
	}
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().FindByName(gomock.Any(), "ghost").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodGet, "/customers/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().FindByName(gomock.Any(), "joao silva").Return(entities.Customer{ID: 1, Name: "JOAO SILVA"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers/joao%20silva", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().DeleteByName(gomock.Any(), "ghost").Return(usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/customers/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(uc)

		uc.EXPECT().DeleteByName(gomock.Any(), "ana").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/customers/ana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
