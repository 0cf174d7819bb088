package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status every booking is created with. There is
// no transition flow past it: the availability flag on the house is
// what gates further bookings.
func InitialStatus() Status {
	return StatusConfirmed
}
