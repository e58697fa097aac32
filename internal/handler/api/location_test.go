//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"parkspot/internal/domain/geo"
	"parkspot/internal/domain/user"
	"parkspot/internal/handler/api"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/httptest"
	"parkspot/tests/common/testutil"
	commandsmock "parkspot/tests/mock/commands"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LocationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLocationCommands
	mockQueries  *queriesmock.MockLocationQueries
	handler      *api.LocationHandler
}

func (s *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLocationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLocationQueries(s.mockCtrl)
	s.handler = api.NewLocationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.GET("/locations", s.handler.GetLocations)
	s.router.GET("/locations/nearby", s.handler.GetNearbyLocations)
	s.router.GET("/locations/:id", s.handler.GetLocation)
	s.router.POST("/locations", authMiddleware, s.handler.CreateLocation)
}

func (s *LocationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLocationHandlerSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}

type testCaseLocation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateLocation
// ================================================================================

func (s *LocationHandlerTestSuite) TestCreateLocation() {
	url := "/locations"

	reqBody := builder.NewLocationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewLocationBuilder().BuildView()

	bound := []testCaseLocation{
		{name: "latitude boundary OK (90)", mutate: testutil.Field("latitude", 90), expectCode: http.StatusCreated},
		{name: "latitude boundary OK (-90)", mutate: testutil.Field("latitude", -90), expectCode: http.StatusCreated},
		{name: "latitude boundary invalid (90.01)", mutate: testutil.Field("latitude", 90.01), expectCode: http.StatusBadRequest},
		{name: "longitude boundary invalid (-180.01)", mutate: testutil.Field("longitude", -180.01), expectCode: http.StatusBadRequest},
		{name: "name length OK (255 chars)", mutate: testutil.Field("name", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
		{name: "name length invalid (256 chars)", mutate: testutil.Field("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "total spots invalid (0)", mutate: testutil.Field("total_spots", 0), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseLocation{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: address (required)", mutate: testutil.Field("address", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: city (required)", mutate: testutil.Field("city", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: total_spots (required)", mutate: testutil.Field("total_spots", nil), expectCode: http.StatusBadRequest},
		{name: "coordinates are optional", mutate: func(m map[string]any) {
			delete(m, "latitude")
			delete(m, "longitude")
		}, expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created with location", func() {
		s.mockCommands.EXPECT().CreateLocation(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.TotalSpots, response.TotalSpots)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range [][]testCaseLocation{bound, missing} {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateLocation(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetLocations
// ================================================================================

func (s *LocationHandlerTestSuite) TestGetLocations() {
	url := "/locations"

	views := []*queries.LocationView{
		builder.NewLocationBuilder().WithSpot("A-01", "available", 500).BuildView(),
		builder.NewLocationBuilder().With(func(b *builder.LocationBuilder) { b.Name = "River Lot" }).BuildView(),
	}

	s.Run("success: returns all active locations with availability", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].AvailableSpots, response[0].AvailableSpots)
		s.Equal("River Lot", response[1].Name)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetLocation
// ================================================================================

func (s *LocationHandlerTestSuite) TestGetLocation() {
	locationID := uuid.New()
	url := "/locations/" + locationID.String()

	returnView := builder.NewLocationBuilder().WithSpot("A-01", "available", 500).BuildView()
	returnView.ID = locationID

	s.Run("success: returns 200 OK with LocationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), locationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(locationID, response.ID)
		s.Len(response.Spots, 1)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location ID")
	})

	s.Run("error: 404 Not Found for missing location", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), locationID).
			Return(nil, queries.ErrLocationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Location not found")
	})
}

// ================================================================================
// TestGetNearbyLocations
// ================================================================================

func (s *LocationHandlerTestSuite) TestGetNearbyLocations() {
	baseURL := "/locations/nearby"

	distance := 1.25
	view := builder.NewLocationBuilder().BuildView()
	view.DistanceKm = &distance

	s.Run("success: defaults radius to 10 km", func() {
		s.mockQueries.EXPECT().Nearby(gomock.Any(), 33.3152, 44.3661, 10.0).
			Return([]*queries.LocationView{view}, nil).Times(1)

		url := baseURL + "?latitude=33.3152&longitude=44.3661"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Require().NotNil(response[0].DistanceKm)
		s.InDelta(distance, *response[0].DistanceKm, 0.001)
	})

	s.Run("success: honors the radius query parameter", func() {
		s.mockQueries.EXPECT().Nearby(gomock.Any(), 33.3152, 44.3661, 2.5).
			Return([]*queries.LocationView{}, nil).Times(1)

		url := baseURL + "?latitude=33.3152&longitude=44.3661&radius=2.5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: an unknown radius key falls back to the default", func() {
		s.mockQueries.EXPECT().Nearby(gomock.Any(), 33.3152, 44.3661, 10.0).
			Return([]*queries.LocationView{}, nil).Times(1)

		url := baseURL + "?latitude=33.3152&longitude=44.3661&radius_km=2.5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: zero coordinates are accepted", func() {
		s.mockQueries.EXPECT().Nearby(gomock.Any(), 0.0, 0.0, 10.0).
			Return([]*queries.LocationView{}, nil).Times(1)

		url := baseURL + "?latitude=0&longitude=0"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when coordinates are missing", func() {
		testCases := []string{
			baseURL,
			baseURL + "?latitude=33.3152",
			baseURL + "?longitude=44.3661",
			baseURL + "?latitude=91&longitude=0",
			baseURL + "?latitude=0&longitude=181",
		}
		for i, url := range testCases {
			s.Run(fmt.Sprintf("case %d", i), func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps geo errors to 400", func() {
		testCases := []struct {
			name        string
			queriesErr  error
			expectedMsg string
		}{
			{name: "invalid coordinates", queriesErr: geo.ErrInvalidCoordinates, expectedMsg: "Invalid coordinates"},
			{name: "invalid radius", queriesErr: geo.ErrInvalidRadius, expectedMsg: "Radius must be between"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Nearby(gomock.Any(), 33.3152, 44.3661, 10.0).
					Return(nil, tc.queriesErr).Times(1)

				url := baseURL + "?latitude=33.3152&longitude=44.3661"
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})
}
