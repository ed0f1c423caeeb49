package models

// UIState is the mutually exclusive display state of an upload cycle.
type UIState int

const (
	// StateIdle is the initial state before any upload.
	StateIdle UIState = iota
	// StateLoading lasts from request start until the outcome is shown.
	StateLoading
	// StateResults means the last cycle rendered a response.
	StateResults
	// StateError means the last cycle ended with a visible error message.
	StateError
)

func (s UIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResults:
		return "results"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// AngleKind identifies one of the three summary cards.
type AngleKind string

const (
	AngleCobb     AngleKind = "cobb"
	AngleKyphosis AngleKind = "kyphosis"
	AngleLordosis AngleKind = "lordosis"
)

// AngleCard is one rendered summary card.
type AngleCard struct {
	Kind   AngleKind
	Label  string
	Value  string
	Detail string
}

// SegmentRow is one rendered row of the segment table.
type SegmentRow struct {
	Segment string
	Angle   string
}
