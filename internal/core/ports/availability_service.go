package ports

import "context"

// Availability is the outcome of a handle availability check.
type Availability string

const (
	// HandleAvailable means no reservation exists for the candidate.
	HandleAvailable Availability = "available"
	// HandleTaken means a reservation already exists.
	HandleTaken Availability = "taken"
	// HandleInvalid means the candidate failed the format rule; the store
	// was never queried.
	HandleInvalid Availability = "invalid"
	// HandleUnknown means the reservation lookup failed. Indeterminate:
	// callers must not treat it as available and must not allow a commit.
	HandleUnknown Availability = "unknown"
)

// AvailabilityResult pairs a candidate with its check outcome. Candidate is
// the normalized form for valid handles and the raw input otherwise.
type AvailabilityResult struct {
	Candidate string
	Status    Availability
}

// AvailabilityService answers whether a candidate handle can still be
// claimed. The result is a UX hint only: the commit path re-checks
// uniqueness atomically at write time.
type AvailabilityService interface {
	Check(ctx context.Context, raw string) (AvailabilityResult, error)
}
