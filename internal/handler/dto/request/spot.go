package request

import "github.com/google/uuid"

type CreateSpotRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	SpotNumber string    `json:"spot_number" binding:"required,max=20"`
	HourlyRate float64   `json:"hourly_rate" binding:"omitempty,gte=0"`
}

type UpdateSpotStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied reserved maintenance"`
}
