package schedule

// Kind is the closed set of request categories. It selects which payload
// variant a schedule carries.
type Kind string

const (
	KindServiceRequest Kind = "service_request"
	KindEarlyAccess    Kind = "early_access"
	KindDelivery       Kind = "delivery"
	KindVisit          Kind = "visit"
	KindIntegration    Kind = "integration"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindServiceRequest, KindEarlyAccess, KindDelivery, KindVisit, KindIntegration:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transition is allowed.
// Approved is terminal for status but still accepts a check-in outcome.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CheckInStatus records the gate-side outcome for an approved schedule.
type CheckInStatus string

const (
	CheckInAuthorized CheckInStatus = "authorized"
	CheckInDenied     CheckInStatus = "denied"
	CheckInNoShow     CheckInStatus = "no_show"
)

func (c CheckInStatus) String() string {
	return string(c)
}

func (c CheckInStatus) IsValid() bool {
	switch c {
	case CheckInAuthorized, CheckInDenied, CheckInNoShow:
		return true
	default:
		return false
	}
}

func NewCheckInStatus(s string) (CheckInStatus, error) {
	status := CheckInStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidCheckInStatus
	}
	return status, nil
}
