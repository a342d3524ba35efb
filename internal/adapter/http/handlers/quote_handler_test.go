package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase"
	"phone_repair/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(uc usecase.IQuoteUseCase) *gin.Engine {
	h := NewQuoteHandler(uc, nil)
	r := gin.New()
	r.POST("/quotes", h.CreateQuote)
	r.GET("/quotes", h.ListQuotes)
	r.GET("/quotes/:record_number", h.GetQuote)
	return r
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing record number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(`{"customer_name":"ana","amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate record number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(`{"record_number":999998,"customer_name":"ana","amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("legacy form payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		want := entities.Quote{
			RecordNumber:  999998,
			CustomerName:  "ana",
			Description:   "troca de tela",
			PaymentMethod: "pix",
			Amount:        150,
		}
		created := want
		created.CustomerName = "ANA"
		uc.EXPECT().Create(gomock.Any(), want).Return(created, nil)

		body := `{"comprovanteOrcamento":"999998","clienteOrcamento":"ana","descricaoOrcamento":"troca de tela","formaDepagementoOrcamento":"pix","valorOrcamento":150}`
		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res struct {
			Quote struct {
				RecordNumber int64   `json:"record_number"`
				CustomerName string  `json:"customer_name"`
				Amount       float64 `json:"amount"`
			} `json:"quote"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if res.Quote.RecordNumber != 999998 || res.Quote.CustomerName != "ANA" || res.Quote.Amount != 150 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/quotes/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().GetByRecordNumber(gomock.Any(), int64(1)).Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/quotes/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().GetByRecordNumber(gomock.Any(), int64(999998)).Return(entities.Quote{RecordNumber: 999998, CustomerName: "ANA"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/quotes/999998", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := newQuoteRouter(uc)

	uc.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestRecordNumberHandler_NextRecordNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRecordNumberUseCase(ctrl)
	h := NewRecordNumberHandler(uc, nil)
	r := gin.New()
	r.GET("/next-record-number", h.NextRecordNumber)

	uc.EXPECT().Next(gomock.Any()).Return(int64(999998), nil)

	req := httptest.NewRequest(http.MethodGet, "/next-record-number", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"record_number":999998}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
