package model

// Status is the preparation state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
)

// Statuses lists every status in the only order an order may visit them.
func Statuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady}
}

// Rank is the position of s in Statuses, or -1 for unknown values.
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusPreparing:
		return 1
	case StatusReady:
		return 2
	}
	return -1
}

func (s Status) Valid() bool { return s.Rank() >= 0 }
