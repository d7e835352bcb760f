package controller

// Target is the desired reservation, resolved once at startup.
type Target struct {
	ProjectID   string
	Zone        string
	Name        string
	Count       int64
	MachineType string
}

// Reservation represents a compute reservation in the domain layer.
type Reservation struct {
	Name        string
	Count       int64
	MachineType string
}

// OperationResult is the terminal outcome of a create or resize operation.
type OperationResult struct {
	Name     string
	Status   string
	Warnings []string
}

// Action is what one reconciliation iteration decided to do.
type Action string

const (
	ActionNone   Action = "none"
	ActionCreate Action = "create"
	ActionResize Action = "resize"
	ActionSkip   Action = "skip"
)

// FetchErrorPolicy decides how a failed reservation fetch is interpreted.
type FetchErrorPolicy string

const (
	// OnFetchErrorAssumeEmpty treats a failed fetch as "no reservation exists"
	// and routes the iteration to the create branch.
	OnFetchErrorAssumeEmpty FetchErrorPolicy = "assume-empty"

	// OnFetchErrorSkip takes no action for the iteration and refetches after the interval.
	OnFetchErrorSkip FetchErrorPolicy = "skip"
)

// ParseFetchErrorPolicy validates a policy name.
func ParseFetchErrorPolicy(s string) (FetchErrorPolicy, error) {
	switch p := FetchErrorPolicy(s); p {
	case OnFetchErrorAssumeEmpty, OnFetchErrorSkip:
		return p, nil
	default:
		return "", ErrUnknownFetchErrorPolicy
	}
}
