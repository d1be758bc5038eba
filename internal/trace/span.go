package trace

import (
	"context"
	"time"
)

// Span emits a begin event and returns a closure that emits the
// matching end event with the elapsed time as detail.
func Span(ctx context.Context, scope Scope, name string) func(detail string) {
	t := FromContext(ctx)
	if !t.Enabled() {
		return func(string) {}
	}
	start := time.Now()
	t.Emit(Event{Time: start, Kind: KindSpanBegin, Scope: scope, Name: name})
	return func(detail string) {
		ev := Event{Time: time.Now(), Kind: KindSpanEnd, Scope: scope, Name: name, Detail: detail}
		if detail == "" {
			ev.Detail = time.Since(start).Round(time.Microsecond).String()
		}
		t.Emit(ev)
	}
}

// Point emits an instant event.
func Point(ctx context.Context, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !t.Enabled() {
		return
	}
	t.Emit(Event{Time: time.Now(), Kind: KindPoint, Scope: scope, Name: name, Detail: detail})
}
