//go:build e2e

package booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"parkspot/internal/domain/user"
	"parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/dto/response"
	"parkspot/tests/common/authtest"
	"parkspot/tests/common/dbtest"
	"parkspot/tests/common/httptest"
	"parkspot/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) jwtHelper() *authtest.JWTHelper {
	return authtest.NewJWTHelper(s.Config.JWT)
}

// =============================================================================
// TestConcurrentCreateBooking - reservation engine under contention
// =============================================================================

func (s *BookingSuite) TestConcurrentCreateBooking() {
	s.Run("exactly one of many concurrent requests wins the spot", func() {
		t := s.T()

		locationID := dbtest.CreateTestLocation(t, s.DB, "Contended Garage", 1)
		spotID := dbtest.CreateTestSpot(t, s.DB, locationID, "A-01", "available", 500)

		const drivers = 10

		tokens := make([]string, drivers)
		for i := range tokens {
			tokens[i] = s.jwtHelper().GenerateToken(t, uuid.New(), user.RoleDriver)
		}

		body, err := json.Marshal(request.CreateBookingRequest{
			LocationID:    locationID,
			SpotNumber:    "A-01",
			DurationHours: 2,
			PaymentMethod: "card",
		})
		require.NoError(t, err)

		// Raw requests instead of the helper: require must not run off the
		// test goroutine.
		codes := make([]int, drivers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range drivers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, bookingsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+tokens[i])
				w := nethttptest.NewRecorder()
				<-start
				s.Router.ServeHTTP(w, req)
				codes[i] = w.Code
			}()
		}
		close(start)
		wg.Wait()

		created, conflicted := 0, 0
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("request %d: unexpected status %d", i, code)
			}
		}
		require.Equal(t, 1, created, "exactly one reservation must win")
		require.Equal(t, drivers-1, conflicted)

		ctx := context.Background()
		var spotStatus string
		err = s.DB.QueryRow(ctx, "SELECT status FROM parking_spots WHERE id = $1", spotID).Scan(&spotStatus)
		require.NoError(t, err)
		require.Equal(t, "occupied", spotStatus)

		var activeBookings int
		err = s.DB.QueryRow(ctx,
			"SELECT count(*) FROM bookings WHERE spot_id = $1 AND booking_status = 'active'", spotID).Scan(&activeBookings)
		require.NoError(t, err)
		require.Equal(t, 1, activeBookings)
	})
}

// =============================================================================
// TestBookingLifecycle - create / complete / re-book through the API
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("completing a booking frees the spot for the next driver", func() {
		t := s.T()

		locationID := dbtest.CreateTestLocation(t, s.DB, "Lifecycle Garage", 1)
		spotID := dbtest.CreateTestSpot(t, s.DB, locationID, "B-01", "available", 750)

		token := s.jwtHelper().GenerateToken(t, uuid.New(), user.RoleDriver)

		reqBody := request.CreateBookingRequest{
			LocationID:    locationID,
			SpotNumber:    "B-01",
			DurationHours: 1.5,
			PaymentMethod: "cash",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, "active", created.BookingStatus)
		require.Equal(t, "pending", created.PaymentStatus)
		require.InDelta(t, 11.25, created.TotalAmount, 0.001)

		// The claimed spot rejects a second booking
		other := s.jwtHelper().GenerateToken(t, uuid.New(), user.RoleDriver)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, other)
		require.Equal(t, http.StatusConflict, w2.Code)

		completeURL := fmt.Sprintf("%s/%s/complete", bookingsURL, created.ID)
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPatch, completeURL, nil, token)
		require.Equal(t, http.StatusOK, w3.Code, w3.Body.String())

		var completed response.BookingResponse
		err = httptest.DecodeResponseBody(t, w3.Body, &completed)
		require.NoError(t, err)
		require.Equal(t, "completed", completed.BookingStatus)
		require.Equal(t, "completed", completed.PaymentStatus)

		var spotStatus string
		err = s.DB.QueryRow(context.Background(),
			"SELECT status FROM parking_spots WHERE id = $1", spotID).Scan(&spotStatus)
		require.NoError(t, err)
		require.Equal(t, "available", spotStatus)

		w4 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, other)
		require.Equal(t, http.StatusCreated, w4.Code, w4.Body.String())
	})

	s.Run("an expired token is rejected", func() {
		t := s.T()

		token := s.jwtHelper().CreateExpiredToken(t, uuid.New(), user.RoleDriver)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
