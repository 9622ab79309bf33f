//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestCommands struct {
	mock.Mock
}

func (m *MockRequestCommands) Create(ctx context.Context, requesterID int64, description string) (int64, error) {
	args := m.Called(ctx, requesterID, description)
	return args.Get(0).(int64), args.Error(1)
}

type MockRequestQueries struct {
	mock.Mock
}

func (m *MockRequestQueries) GetByID(ctx context.Context, viewerID, requestID int64) (*queries.RequestView, error) {
	args := m.Called(ctx, viewerID, requestID)
	if v := args.Get(0); v != nil {
		return v.(*queries.RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestQueries) ListOwn(ctx context.Context, requesterID int64) ([]queries.RequestView, error) {
	args := m.Called(ctx, requesterID)
	if v := args.Get(0); v != nil {
		return v.([]queries.RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestQueries) ListAll(ctx context.Context, viewerID int64, from, size int) ([]queries.RequestView, error) {
	args := m.Called(ctx, viewerID, from, size)
	if v := args.Get(0); v != nil {
		return v.([]queries.RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequestTestRouter(cmds *MockRequestCommands, qs *MockRequestQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewItemRequestHandler(cmds, qs)

	grp := router.Group("/requests")
	grp.Use(middleware.RequireUser())
	grp.POST("", handler.Create)
	grp.GET("", handler.ListOwn)
	grp.GET("/all", handler.ListAll)
	grp.GET("/:id", handler.Get)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, url, sharer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sharer != "" {
		req.Header.Set("X-Sharer-User-Id", sharer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requestView(id, requesterID int64) *queries.RequestView {
	return &queries.RequestView{
		ID:          id,
		Description: "need a ladder",
		RequesterID: requesterID,
		Created:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Items:       []queries.ItemView{},
	}
}

func TestItemRequestCreate(t *testing.T) {
	t.Run("success returns 201", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		cmds.On("Create", mock.Anything, int64(2), "need a ladder").Return(int64(7), nil)
		qs.On("GetByID", mock.Anything, int64(2), int64(7)).Return(requestView(7, 2), nil)

		rec := performRequest(t, router, http.MethodPost, "/requests", "2",
			map[string]string{"description": "need a ladder"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "need a ladder")
	})
}

func TestItemRequestListAll(t *testing.T) {
	t.Run("defaults to from=0 size=10", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		qs.On("ListAll", mock.Anything, int64(2), 0, 10).Return([]queries.RequestView{}, nil)

		rec := performRequest(t, router, http.MethodGet, "/requests/all", "2", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		qs.AssertExpectations(t)
	})

	t.Run("passes explicit page arguments through", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		qs.On("ListAll", mock.Anything, int64(2), 15, 5).Return([]queries.RequestView{}, nil)

		rec := performRequest(t, router, http.MethodGet, "/requests/all?from=15&size=5", "2", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		qs.AssertExpectations(t)
	})

	t.Run("non-numeric page argument maps to 400", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		rec := performRequest(t, router, http.MethodGet, "/requests/all?from=abc", "2", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		qs.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero size rejected by the service maps to 400", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		qs.On("ListAll", mock.Anything, int64(2), 0, 0).Return(nil, queries.ErrZeroPageSize)

		rec := performRequest(t, router, http.MethodGet, "/requests/all?size=0", "2", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestItemRequestGet(t *testing.T) {
	t.Run("any user can read another user's request", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		qs.On("GetByID", mock.Anything, int64(9), int64(7)).Return(requestView(7, 2), nil)

		rec := performRequest(t, router, http.MethodGet, "/requests/7", "9", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown request maps to 404", func(t *testing.T) {
		cmds := new(MockRequestCommands)
		qs := new(MockRequestQueries)
		router := newRequestTestRouter(cmds, qs)

		qs.On("GetByID", mock.Anything, int64(2), int64(99)).Return(nil, queries.ErrRequestNotFound)

		rec := performRequest(t, router, http.MethodGet, "/requests/99", "2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
