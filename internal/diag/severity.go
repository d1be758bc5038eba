package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseSeverity maps a tool-reported severity label to a Severity.
// Unknown labels fall back to SevWarning so diagnostics are never
// silently dropped on the parse path.
func ParseSeverity(label string) Severity {
	switch label {
	case "error", "ERROR", "High", "high":
		return SevError
	case "warning", "WARNING", "warn", "Low", "low", "Medium", "medium":
		return SevWarning
	case "info", "INFO", "note", "hint":
		return SevInfo
	}
	return SevWarning
}
