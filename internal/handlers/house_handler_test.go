package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kvartirnik/house-booking/internal/models"
)

func newHouseRouter(repo *mockBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHouseHandler(repo, nil)

	r := gin.New()
	r.GET("/api/houses", h.List)
	r.GET("/api/houses/:id", h.Get)
	return r
}

func TestListHousesEndpoint(t *testing.T) {
	repo := &mockBookingRepo{}
	r := newHouseRouter(repo)

	houses := []models.House{
		{ID: 1, Name: "Lake cabin", Price: 120.50, IsAvailable: true},
		{ID: 2, Name: "Forest hut", Price: 80, IsAvailable: true},
	}
	repo.On("ListAvailableHouses", mock.Anything).Return(houses, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/houses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Total   int  `json:"total"`
		Houses  []struct {
			ID          uint `json:"id"`
			IsAvailable bool `json:"is_available"`
		} `json:"houses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Houses, 2)
}

func TestGetHouseEndpoint_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	r := newHouseRouter(repo)

	repo.On("GetHouseByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/houses/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "House not found")
}

func TestGetHouseEndpoint_OK(t *testing.T) {
	repo := &mockBookingRepo{}
	r := newHouseRouter(repo)

	house := &models.House{ID: 1, Name: "Lake cabin", Description: "On the shore", Price: 120.50, IsAvailable: true}
	repo.On("GetHouseByID", mock.Anything, uint(1)).Return(house, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/houses/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_available":true`)
	assert.Contains(t, w.Body.String(), "Lake cabin")
}
