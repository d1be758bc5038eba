package diag

import "fmt"

// Diagnostic is a single issue reported by an external tool run:
// a lint violation, type error, or security finding tied to a
// file position.
type Diagnostic struct {
	Tool     string
	Path     string
	Line     uint32
	Col      uint32 // 0 when the tool did not report a column
	Rule     string
	Severity Severity
	Message  string
}

func New(tool string, sev Severity, path string, line, col uint32, rule, msg string) Diagnostic {
	return Diagnostic{
		Tool:     tool,
		Severity: sev,
		Path:     path,
		Line:     line,
		Col:      col,
		Rule:     rule,
		Message:  msg,
	}
}

// Pos renders the position as path:line or path:line:col.
func (d Diagnostic) Pos() string {
	if d.Col == 0 {
		return fmt.Sprintf("%s:%d", d.Path, d.Line)
	}
	return fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Col)
}
