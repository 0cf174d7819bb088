package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/kvartirnik/house-booking/internal/domain/booking"
	"github.com/kvartirnik/house-booking/internal/dto"
	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/httpresp"
	"github.com/kvartirnik/house-booking/internal/models"
)

// HouseCatalog is what the handler needs from the redis side.
type HouseCatalog interface {
	GetAvailableHouses(ctx context.Context) ([]models.House, error)
	SetAvailableHouses(ctx context.Context, houses []models.House) error
}

type HouseHandler struct {
	repo  domain.Repository
	cache HouseCatalog
}

func NewHouseHandler(repo domain.Repository, cache HouseCatalog) *HouseHandler {
	return &HouseHandler{repo: repo, cache: cache}
}

// ======================================================
// LIST AVAILABLE
// ======================================================

func (h *HouseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if houses, err := h.cache.GetAvailableHouses(ctx); err == nil && houses != nil {
			httpresp.OK(c, gin.H{
				"success": true,
				"houses":  dto.NewHouseDTOs(houses),
				"total":   len(houses),
			})
			return
		}
	}

	houses, err := h.repo.ListAvailableHouses(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_houses", "Internal server error")
		return
	}

	if h.cache != nil {
		_ = h.cache.SetAvailableHouses(ctx, houses)
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"houses":  dto.NewHouseDTOs(houses),
		"total":   len(houses),
	})
}

// ======================================================
// GET BY ID
// ======================================================

func (h *HouseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "house_not_found", "House not found")
		return
	}

	house, err := h.repo.GetHouseByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "house_not_found", "House not found")
			return
		}
		httperr.Internal(c, "failed_to_get_house", "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"house":   dto.NewHouseDTO(house),
	})
}
