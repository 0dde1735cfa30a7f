package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"skiphire/internal/adapter/http/handlers/mocks"
	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions/:session_id/quote", h.CreateQuote)
	r.GET("/v1/sessions/:session_id/quotes", h.ListSessionQuotes)
	r.GET("/v1/quotes/:quote_id", h.GetQuote)
	return r
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().CreateFromSession(gomock.Any(), testSessionID).Return(entities.Quote{}, usecase.ErrNoSelection)

		w := doRequest(r, http.MethodPost, "/v1/sessions/"+testSessionID+"/quote", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().CreateFromSession(gomock.Any(), testSessionID).Return(entities.Quote{}, usecase.ErrSessionNotFound)

		w := doRequest(r, http.MethodPost, "/v1/sessions/"+testSessionID+"/quote", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().CreateFromSession(gomock.Any(), testSessionID).Return(entities.Quote{
			ID: "q-1", SessionID: testSessionID, SkipID: 2, Size: 6, TotalPrice: 366, PermitRequired: true, CreatedAt: time.Now().UTC(),
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/sessions/"+testSessionID+"/quote", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["quote_id"] != "q-1" || body["formatted_total"] != "366.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Size: 4, TotalPrice: 333.6}, nil)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListSessionQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := quoteRouter(NewQuoteHandler(uc))

	uc.EXPECT().ListBySessionID(gomock.Any(), testSessionID).Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

	w := doRequest(r, http.MethodGet, "/v1/sessions/"+testSessionID+"/quotes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(body))
	}
}
