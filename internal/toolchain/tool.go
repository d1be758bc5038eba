package toolchain

import (
	"path/filepath"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/project"
	"qualhook/internal/runner"
)

// ParseResult is what a tool adapter extracts from one finished run.
type ParseResult struct {
	Diags []diag.Diagnostic
	Fixed int // issues the tool auto-fixed before reporting

	// Failure marks an invocation-level problem (unexpected exit with
	// unrecognizable output). Surfaced by the caller as a single
	// warning line; no aggregation is attempted.
	Failure string
}

// Tool adapts one external linter/formatter/type-checker. The binary's
// own CLI contract is taken as-is: adapters only build argv and parse
// the tool's native output.
type Tool interface {
	Name() string

	// FixArgv returns an optional auto-fix pass run before the check
	// pass; nil when the check pass fixes and reports in one go.
	FixArgv(target string) []string

	// CheckArgv returns the run whose output is parsed.
	CheckArgv(target string) []string

	// Parse converts the check pass result into diagnostics. The target
	// is the path as it was handed to the tool, for adapters whose
	// output omits file positions.
	Parse(res runner.Result, target string) ParseResult
}

// warningSummarizer marks tools whose warnings surface as a count
// only; detail lines are reserved for errors.
type warningSummarizer interface {
	SummarizeWarnings() bool
}

// Chain is a language-specific tool sequence triggered by extension.
type Chain struct {
	Name       string
	Extensions []string
	Tools      []Tool

	// ResolveRoot locates the working directory for tool runs. ok=false
	// means the chain cannot run here and is skipped silently.
	ResolveRoot func(fileDir string) (root string, ok bool, err error)

	// RelativeTarget controls whether tools receive the target path
	// relative to the chain root (the web tools) or absolute.
	RelativeTarget bool

	config func(project.Config) project.ChainConfig
}

// Matches reports whether the chain triggers for the given file path.
func (c *Chain) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Config extracts this chain's section from the project config.
func (c *Chain) Config(cfg project.Config) project.ChainConfig {
	return c.config(cfg)
}

// PythonChain wires ruff, basedpyright, and bandit for .py files.
func PythonChain() *Chain {
	return &Chain{
		Name:       "python",
		Extensions: []string{".py"},
		Tools:      []Tool{Ruff{}, Basedpyright{}, Bandit{}},
		ResolveRoot: func(fileDir string) (string, bool, error) {
			root, err := project.FindPythonRoot(fileDir)
			return root, err == nil, err
		},
		config: func(cfg project.Config) project.ChainConfig { return cfg.Python },
	}
}

// WebChain wires prettier, eslint, and tsc for TypeScript/JavaScript.
func WebChain() *Chain {
	return &Chain{
		Name:           "web",
		Extensions:     []string{".ts", ".tsx", ".js", ".jsx"},
		Tools:          []Tool{Prettier{}, ESLint{}, Tsc{}},
		ResolveRoot:    project.FindWebRoot,
		RelativeTarget: true,
		config:         func(cfg project.Config) project.ChainConfig { return cfg.Web },
	}
}

// Chains returns every registered chain in dispatch order.
func Chains() []*Chain {
	return []*Chain{PythonChain(), WebChain()}
}

// ChainFor picks the chain triggered by the file extension.
func ChainFor(path string) (*Chain, bool) {
	for _, c := range Chains() {
		if c.Matches(path) {
			return c, true
		}
	}
	return nil, false
}
