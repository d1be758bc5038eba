package trace

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// StreamTracer writes events immediately as text lines.
type StreamTracer struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	seq   uint64
	start time.Time
}

// NewStreamTracer returns a tracer that writes one line per event.
func NewStreamTracer(w io.Writer, level Level) *StreamTracer {
	return &StreamTracer{w: w, level: level, start: time.Now()}
}

func (t *StreamTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	elapsed := ev.Time.Sub(t.start)
	line := fmt.Sprintf("[%9.3fms] %-5s %-5s %s", float64(elapsed)/float64(time.Millisecond), ev.Scope, ev.Kind, ev.Name)
	if ev.Detail != "" {
		line += " " + ev.Detail
	}
	fmt.Fprintln(t.w, line)
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
