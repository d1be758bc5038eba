package runner

import (
	"context"
	"time"
)

// Fake replays scripted results for tests, keyed by the first argv
// element that matches. Unknown commands succeed with empty output.
type Fake struct {
	Results map[string]Result
	Calls   [][]string
}

func NewFake() *Fake {
	return &Fake{Results: make(map[string]Result)}
}

// Script registers the result returned when a command whose argv
// contains name is run.
func (f *Fake) Script(name string, res Result) {
	f.Results[name] = res
}

func (f *Fake) Run(_ context.Context, _ string, argv []string, _ time.Duration) Result {
	f.Calls = append(f.Calls, argv)
	for _, arg := range argv {
		if res, ok := f.Results[arg]; ok {
			return res
		}
	}
	return Result{}
}
