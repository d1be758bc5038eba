package diag

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Group collects diagnostics that share the same rule and message.
// Lines preserves the order in which the member lines were received.
type Group struct {
	Tool     string
	Rule     string
	Severity Severity
	Message  string
	Lines    []uint32
}

// Count returns the number of member diagnostics.
func (g Group) Count() int { return len(g.Lines) }

type groupKey struct {
	rule string
	msg  string
}

// NormalizeMessage canonicalizes a tool message for grouping: Unicode
// NFC plus surrounding whitespace trim. Interpolated values (variable
// names and the like) are deliberately kept, so only diagnostics with
// the exact same rendered message collapse together.
func NormalizeMessage(msg string) string {
	return strings.TrimSpace(norm.NFC.String(msg))
}

// GroupDiagnostics partitions diagnostics by (rule, normalized message).
// Groups come out in first-encounter order; within a group, line numbers
// keep input order. Severity is the highest severity seen in the group.
func GroupDiagnostics(diags []Diagnostic) []Group {
	var groups []Group
	index := make(map[groupKey]int, len(diags))
	for _, d := range diags {
		key := groupKey{rule: d.Rule, msg: NormalizeMessage(d.Message)}
		if i, ok := index[key]; ok {
			groups[i].Lines = append(groups[i].Lines, d.Line)
			if d.Severity > groups[i].Severity {
				groups[i].Severity = d.Severity
			}
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{
			Tool:     d.Tool,
			Rule:     d.Rule,
			Severity: d.Severity,
			Message:  key.msg,
			Lines:    []uint32{d.Line},
		})
	}
	return groups
}
