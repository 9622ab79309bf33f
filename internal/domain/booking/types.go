package booking

// Status is the lifecycle state of a booking. WAITING is the only state with
// outgoing transitions; CANCELED is written by back-office tooling only and is
// treated like REJECTED when filtering.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// Decided reports whether the status is terminal.
func (s Status) Decided() bool {
	return s != StatusWaiting
}
