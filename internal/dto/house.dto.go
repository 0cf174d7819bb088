package dto

import "github.com/kvartirnik/house-booking/internal/models"

type HouseDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

func NewHouseDTO(h *models.House) HouseDTO {
	return HouseDTO{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Price:       h.Price,
		IsAvailable: h.IsAvailable,
	}
}

func NewHouseDTOs(houses []models.House) []HouseDTO {
	out := make([]HouseDTO, 0, len(houses))
	for i := range houses {
		out = append(out, NewHouseDTO(&houses[i]))
	}
	return out
}
