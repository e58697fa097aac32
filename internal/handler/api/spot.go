package api

import (
	"errors"
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	spotCommands commands.SpotCommands
	spotQueries  queries.SpotQueries
}

func NewSpotHandler(spotCommands commands.SpotCommands, spotQueries queries.SpotQueries) *SpotHandler {
	return &SpotHandler{
		spotCommands: spotCommands,
		spotQueries:  spotQueries,
	}
}

func (h *SpotHandler) CreateSpot(c *gin.Context) {
	var req reqdto.CreateSpotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.spotCommands.CreateSpot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateSpotNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Spot number already exists at this location",
			})
		case errors.Is(err, commands.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSpotView(view))
}

func (h *SpotHandler) UpdateSpotStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid spot ID format",
		})
		return
	}

	var req reqdto.UpdateSpotStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.spotCommands.UpdateSpotStatus(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrSpotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Parking spot not found",
			})
		case errors.Is(err, commands.ErrInvalidSpotStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid spot status",
			})
		case errors.Is(err, commands.ErrSpotContended):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Parking spot is being updated by another request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Spot status updated",
	})
}

func (h *SpotHandler) GetAvailableSpots(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	views, err := h.spotQueries.ListAvailable(c.Request.Context(), locationID)
	if err != nil {
		if errors.Is(err, queries.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}

func (h *SpotHandler) GetSpotByNumber(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}
	spotNumber := c.Param("spotNumber")

	view, err := h.spotQueries.GetByNumber(c.Request.Context(), locationID, spotNumber)
	if err != nil {
		if errors.Is(err, queries.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Parking spot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpotWithLocation(view))
}
