package main

import (
	"io"

	"qualhook/internal/observ"
)

func printTimings(w io.Writer, timings []observ.ToolTiming) {
	if len(timings) == 0 {
		return
	}
	io.WriteString(w, observ.RenderTimings(timings))
}
