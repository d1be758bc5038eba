package main

import (
	"context"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"qualhook/internal/diag"
	"qualhook/internal/observ"
	"qualhook/internal/runner"
	"qualhook/internal/toolchain"
	"qualhook/internal/trace"
	"qualhook/internal/ui"
)

type checkOutcome struct {
	reports []diag.Report
	err     error
}

// runChecksWithUI runs the chains for every file in a goroutine while a
// Bubble Tea program renders per-file progress on stdout.
func runChecksWithUI(ctx context.Context, files []string, maxDiags int, tm *observ.Timer) ([]diag.Report, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		var all []diag.Report
		var firstErr error
		for _, file := range files {
			steps := 0
			if chain, ok := toolchain.ChainFor(file); ok {
				steps = len(chain.Tools)
			}
			events <- ui.Event{File: file, Status: ui.StatusRunning, Steps: steps}

			fileCtx := trace.WithTracer(ctx, &uiProgressTracer{
				parent: trace.FromContext(ctx),
				events: events,
				file:   file,
				steps:  steps,
			})
			reports, err := checkFile(fileCtx, runner.Exec{}, file, maxDiags, tm)
			events <- ui.Event{File: file, Status: fileStatus(reports, err)}

			if err != nil && firstErr == nil {
				firstErr = err
			}
			all = append(all, reports...)
		}
		outcomeCh <- checkOutcome{reports: all, err: firstErr}
		close(events)
	}()

	model := ui.NewProgressModel("qualhook check", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.reports, uiErr
	}
	return outcome.reports, outcome.err
}

func fileStatus(reports []diag.Report, err error) ui.Status {
	if err != nil {
		return ui.StatusFailed
	}
	for _, r := range reports {
		if r.Status != diag.StatusPass {
			return ui.StatusIssues
		}
	}
	return ui.StatusClean
}

// uiProgressTracer forwards tool span begins to the progress display
// and everything to the parent tracer.
type uiProgressTracer struct {
	parent trace.Tracer
	events chan<- ui.Event
	file   string
	steps  int
	step   int
}

func (t *uiProgressTracer) Emit(ev trace.Event) {
	if t.parent.Enabled() {
		t.parent.Emit(ev)
	}
	if ev.Scope != trace.ScopeTool || ev.Kind != trace.KindSpanBegin {
		return
	}
	t.events <- ui.Event{
		File:   t.file,
		Tool:   strings.TrimPrefix(ev.Name, "tool:"),
		Status: ui.StatusRunning,
		Step:   t.step,
		Steps:  t.steps,
	}
	t.step++
}

func (t *uiProgressTracer) Flush() error { return t.parent.Flush() }
func (t *uiProgressTracer) Close() error { return nil }

func (t *uiProgressTracer) Level() trace.Level {
	if lvl := t.parent.Level(); lvl > trace.LevelPhase {
		return lvl
	}
	return trace.LevelPhase
}

func (t *uiProgressTracer) Enabled() bool { return true }
