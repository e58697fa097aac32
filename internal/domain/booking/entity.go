package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a time-boxed reservation of one spot by one user. A spot is
// referenced by at most one active booking at any instant; the reservation
// engine enforces that under row locks.
type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	spotID        uuid.UUID
	startTime     time.Time
	endTime       time.Time
	duration      Duration
	totalAmount   Money
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	status        Status
	vehicleNumber VehicleNumber
}

func (b *Booking) HasExpired(now time.Time) bool {
	return b.status == StatusActive && now.After(b.endTime)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) SpotID() uuid.UUID            { return b.spotID }
func (b *Booking) StartTime() time.Time         { return b.startTime }
func (b *Booking) EndTime() time.Time           { return b.endTime }
func (b *Booking) Duration() Duration           { return b.duration }
func (b *Booking) TotalAmount() Money           { return b.totalAmount }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) VehicleNumber() VehicleNumber { return b.vehicleNumber }
