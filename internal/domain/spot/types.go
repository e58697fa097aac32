package spot

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance:
		return true
	default:
		return false
	}
}

// IsReservable reports whether the reservation engine may claim the spot.
// Only an available spot can transition to occupied; every other status is
// surfaced to the caller as a conflict.
func (s Status) IsReservable() bool {
	return s == StatusAvailable
}
