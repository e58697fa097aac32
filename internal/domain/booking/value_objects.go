package booking

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidDuration      = errors.New("duration must be between 0.5 and 24 hours")
	ErrEmptyPaymentMethod   = errors.New("payment method must not be empty")
	ErrVehicleNumberTooLong = errors.New("vehicle number must not exceed 20 characters")
)

const (
	MinDurationHours = 0.5
	MaxDurationHours = 24

	MaxVehicleNumberLength = 20
)

// Duration is a reservation length in fractional hours.
type Duration struct {
	hours float64
}

func NewDuration(hours float64) (Duration, error) {
	if math.IsNaN(hours) || hours < MinDurationHours || hours > MaxDurationHours {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{hours: hours}, nil
}

func (d Duration) Hours() float64 {
	return d.hours
}

func (d Duration) AsTimeDuration() time.Duration {
	return time.Duration(d.hours * float64(time.Hour))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

// PaymentMethod is an open enumeration; the allowed set is enforced at the
// request-validation boundary, the core only records it.
type PaymentMethod struct {
	value string
}

func NewPaymentMethod(value string) (PaymentMethod, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return PaymentMethod{}, ErrEmptyPaymentMethod
	}
	return PaymentMethod{value: value}, nil
}

func (p PaymentMethod) String() string {
	return p.value
}

type VehicleNumber struct {
	value string
}

func NewVehicleNumber(value *string) (VehicleNumber, error) {
	if value == nil {
		return VehicleNumber{}, nil
	}
	trimmed := strings.TrimSpace(*value)
	if len(trimmed) > MaxVehicleNumberLength {
		return VehicleNumber{}, ErrVehicleNumberTooLong
	}
	return VehicleNumber{value: trimmed}, nil
}

func (v VehicleNumber) String() string {
	return v.value
}

func (v VehicleNumber) IsEmpty() bool {
	return v.value == ""
}

func (v VehicleNumber) Ptr() *string {
	if v.value == "" {
		return nil
	}
	s := v.value
	return &s
}
