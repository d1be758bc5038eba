package observ

import (
	"fmt"
	"strings"
	"time"
)

// ToolTiming records how long one external tool run took and how it
// ended ("pass", "fail", "timed out", ...).
type ToolTiming struct {
	Tool    string
	Dur     time.Duration
	Outcome string
}

// Timer collects per-tool wall-clock timings for one hook or check
// invocation.
type Timer struct {
	started map[string]time.Time
	done    []ToolTiming
}

func NewTimer() *Timer {
	return &Timer{started: make(map[string]time.Time, 4)}
}

// Begin marks the start of a tool run.
func (t *Timer) Begin(tool string) {
	t.started[tool] = time.Now()
}

// End closes a tool run with its outcome. Unmatched calls are ignored.
func (t *Timer) End(tool, outcome string) {
	start, ok := t.started[tool]
	if !ok {
		return
	}
	delete(t.started, tool)
	t.done = append(t.done, ToolTiming{Tool: tool, Dur: time.Since(start), Outcome: outcome})
}

// Timings returns finished tool runs in completion order.
func (t *Timer) Timings() []ToolTiming {
	return t.done
}

// Summary renders a human-readable timing table.
func (t *Timer) Summary() string {
	return RenderTimings(t.done)
}

// RenderTimings renders a human-readable timing table.
func RenderTimings(timings []ToolTiming) string {
	var b strings.Builder
	b.WriteString("timings:\n")
	var total time.Duration
	for _, tt := range timings {
		total += tt.Dur
		fmt.Fprintf(&b, "  %-14s %8.2f ms", tt.Tool, millis(tt.Dur))
		if tt.Outcome != "" {
			b.WriteString("  // " + tt.Outcome)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-14s %8.2f ms\n", "total", millis(total))
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
