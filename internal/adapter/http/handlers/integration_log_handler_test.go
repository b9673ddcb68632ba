package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotedesk/internal/adapter/http/handlers/mocks"
	"quotedesk/internal/adapter/http/middleware"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func logRouter(h *IntegrationLogHandler, id entities.Identity) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/logs", middleware.WithIdentity(id))
	g.GET("", h.ListLogs)
	g.GET("/by-quote", h.ListLogsByQuote)
	g.GET("/by-action", h.ListLogsByAction)
	return r
}

func TestIntegrationLogHandler_ListLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntegrationLogUseCase(ctrl)
		r := logRouter(NewIntegrationLogHandler(uc), adminIdentity())

		uc.EXPECT().ListVisible(gomock.Any(), adminIdentity()).Return([]entities.IntegrationLog{
			{ID: "l-1", Action: entities.LogActionCreate},
			{ID: "l-2", Action: entities.LogActionStatus},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/logs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(resp))
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntegrationLogUseCase(ctrl)
		r := logRouter(NewIntegrationLogHandler(uc), adminIdentity())

		uc.EXPECT().ListVisible(gomock.Any(), adminIdentity()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/logs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestIntegrationLogHandler_ListLogsByQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quote_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntegrationLogUseCase(ctrl)
		r := logRouter(NewIntegrationLogHandler(uc), salesIdentity())

		uc.EXPECT().ListByQuote(gomock.Any(), salesIdentity(), "").Return(nil, usecase.ErrMissingQuoteIDParam)

		req := httptest.NewRequest(http.MethodGet, "/v1/logs/by-quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntegrationLogUseCase(ctrl)
		r := logRouter(NewIntegrationLogHandler(uc), salesIdentity())

		uc.EXPECT().ListByQuote(gomock.Any(), salesIdentity(), "q-1").Return([]entities.IntegrationLog{
			{ID: "l-1", QuoteID: "q-1", UserID: "user-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/logs/by-quote?quote_id=q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestIntegrationLogHandler_ListLogsByAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntegrationLogUseCase(ctrl)
		r := logRouter(NewIntegrationLogHandler(uc), salesIdentity())

		uc.EXPECT().ListByAction(gomock.Any(), salesIdentity(), "").Return(nil, usecase.ErrMissingActionParam)

		req := httptest.NewRequest(http.MethodGet, "/v1/logs/by-action", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntegrationLogUseCase(ctrl)
		r := logRouter(NewIntegrationLogHandler(uc), adminIdentity())

		uc.EXPECT().ListByAction(gomock.Any(), adminIdentity(), "ERP_FAILURE").Return([]entities.IntegrationLog{
			{ID: "l-1", Action: entities.LogActionERPFailure},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/logs/by-action?action=ERP_FAILURE", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
