package upload

// State is the progress of a single upload.
type State int32

const (
	StateNotStarted State = iota
	StateSending
	StateAwaitingResponse
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NOT_STARTED"
	case StateSending:
		return "SENDING"
	case StateAwaitingResponse:
		return "AWAITING_RESPONSE"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
