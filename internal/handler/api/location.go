package api

import (
	"errors"
	"net/http"

	"parkspot/internal/domain/geo"
	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	locationCommands commands.LocationCommands
	locationQueries  queries.LocationQueries
}

func NewLocationHandler(locationCommands commands.LocationCommands, locationQueries queries.LocationQueries) *LocationHandler {
	return &LocationHandler{
		locationCommands: locationCommands,
		locationQueries:  locationQueries,
	}
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.locationCommands.CreateLocation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLocationView(view))
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	views, err := h.locationQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationViews(views))
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	view, err := h.locationQueries.GetByID(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromLocationView(view))
}

func (h *LocationHandler) GetNearbyLocations(c *gin.Context) {
	var query reqdto.NearbyLocationsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "latitude and longitude query parameters are required",
		})
		return
	}

	radiusKm := queries.DefaultSearchRadiusKm
	if query.RadiusKm != nil {
		radiusKm = *query.RadiusKm
	}

	views, err := h.locationQueries.Nearby(c.Request.Context(), *query.Latitude, *query.Longitude, radiusKm)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrInvalidCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coordinates",
			})
		case errors.Is(err, geo.ErrInvalidRadius):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Radius must be between 0 and 100 km",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationViews(views))
}
