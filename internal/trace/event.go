package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event. Lower numeric
// values represent higher-level/coarser events.
type Scope uint8

const (
	// ScopeHook represents whole hook invocations (highest level).
	ScopeHook Scope = iota + 1
	// ScopeTool represents one external tool run.
	ScopeTool
	// ScopeParse represents output parsing and aggregation steps.
	ScopeParse
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeHook:
		return "hook"
	case ScopeTool:
		return "tool"
	case ScopeParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time   time.Time // wall-clock timestamp
	Seq    uint64    // global sequence number (monotonic)
	Kind   Kind
	Scope  Scope
	Name   string // e.g. "tool:eslint", "hook:app.ts"
	Detail string // optional detail message
}
