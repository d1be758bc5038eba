package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses basename for hook feedback, full path otherwise.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of reports.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	Width    int // maximum line width, 0 = unlimited
}

// JSONOpts configures JSON output of reports.
type JSONOpts struct {
	IncludePassing bool // emit reports with zero groups as well
	Indent         bool
}
