package diag

// Status is the outcome of one tool run over one target file.
type Status uint8

const (
	// StatusPass means the filtered diagnostic set was empty.
	StatusPass Status = iota
	// StatusFail means unfixable diagnostics remain on the target.
	StatusFail
	// StatusTimeout means the tool exceeded its wall-clock budget;
	// partial output was discarded, not aggregated.
	StatusTimeout
	// StatusToolError means the tool could not be invoked (binary
	// missing or unexpected non-zero exit with unparseable output).
	StatusToolError
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusTimeout:
		return "timed out"
	case StatusToolError:
		return "tool failed"
	}
	return "unknown"
}

// Report is the aggregated result of one tool run: scope-filtered,
// grouped diagnostics for a single target file. Reports are built
// fresh per invocation, rendered, and discarded.
type Report struct {
	Tool   string
	Target string
	Groups []Group
	Fixed  int // issues the tool auto-fixed before aggregation
	Status Status
	Detail string // human context for timeout / tool-error reports
	// SummarizeWarnings renders warning groups as a count only,
	// keeping detail lines for errors. Used for tools whose warnings
	// are too chatty to surface line by line.
	SummarizeWarnings bool
}

// Aggregate filters diags to the target file, groups what remains,
// and produces the final Report. An empty filtered set yields a
// silent pass.
func Aggregate(tool, target string, diags []Diagnostic, fixed int) Report {
	scoped := diags[:0:0]
	for _, d := range diags {
		if SamePath(d.Path, target) {
			scoped = append(scoped, d)
		}
	}
	r := Report{
		Tool:   tool,
		Target: target,
		Groups: GroupDiagnostics(scoped),
		Fixed:  fixed,
	}
	if len(r.Groups) > 0 {
		r.Status = StatusFail
	}
	return r
}

// TimeoutReport marks a run that exceeded its budget. Treated as a
// non-fatal warning by callers; carries no groups.
func TimeoutReport(tool, target, detail string) Report {
	return Report{Tool: tool, Target: target, Status: StatusTimeout, Detail: detail}
}

// ToolErrorReport marks a run whose invocation failed outright.
func ToolErrorReport(tool, target, detail string) Report {
	return Report{Tool: tool, Target: target, Status: StatusToolError, Detail: detail}
}

// ErrorCount returns the number of member diagnostics across groups
// with error severity.
func (r Report) ErrorCount() int {
	n := 0
	for _, g := range r.Groups {
		if g.Severity >= SevError {
			n += g.Count()
		}
	}
	return n
}

// WarningCount returns the number of member diagnostics across groups
// with warning severity.
func (r Report) WarningCount() int {
	n := 0
	for _, g := range r.Groups {
		if g.Severity == SevWarning {
			n += g.Count()
		}
	}
	return n
}
