package diagfmt

import (
	"encoding/json"
	"io"

	"qualhook/internal/diag"
)

// GroupOutput is the serialized form of one diagnostic group.
type GroupOutput struct {
	Rule     string   `json:"rule"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Count    int      `json:"count"`
	Lines    []uint32 `json:"lines"`
}

// ReportOutput is the serialized form of one per-tool report.
type ReportOutput struct {
	Tool   string        `json:"tool"`
	Target string        `json:"target"`
	Status string        `json:"status"`
	Fixed  int           `json:"auto_fixed,omitempty"`
	Detail string        `json:"detail,omitempty"`
	Groups []GroupOutput `json:"groups,omitempty"`
}

// BuildReportOutput converts a report into its serializable form.
func BuildReportOutput(r diag.Report) ReportOutput {
	out := ReportOutput{
		Tool:   r.Tool,
		Target: r.Target,
		Status: r.Status.String(),
		Fixed:  r.Fixed,
		Detail: r.Detail,
	}
	for _, g := range r.Groups {
		out.Groups = append(out.Groups, GroupOutput{
			Rule:     g.Rule,
			Severity: g.Severity.String(),
			Message:  g.Message,
			Count:    g.Count(),
			Lines:    g.Lines,
		})
	}
	return out
}

// JSON encodes reports as a JSON array. Passing reports are omitted
// unless opts.IncludePassing is set.
func JSON(w io.Writer, reports []diag.Report, opts JSONOpts) error {
	outs := make([]ReportOutput, 0, len(reports))
	for _, r := range reports {
		if r.Status == diag.StatusPass && !opts.IncludePassing {
			continue
		}
		outs = append(outs, BuildReportOutput(r))
	}
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(outs)
}
