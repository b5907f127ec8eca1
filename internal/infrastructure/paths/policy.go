// Package paths resolves logical prompt/schema/output locations into
// absolute, validated file-system paths.
package paths

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Strategy names a path-anchoring behavior.
type Strategy string

const (
	// StrategyAbsolute keeps absolute input as-is and anchors the rest
	// under the base directory.
	StrategyAbsolute Strategy = "absolute"
	// StrategyRelative anchors under workDir/baseDir.
	StrategyRelative Strategy = "relative"
	// StrategyWorkspace anchors strictly under the base directory,
	// absolute input included.
	StrategyWorkspace Strategy = "workspace"
)

// RuleCheck names a single filesystem probe.
type RuleCheck string

const (
	RuleMustExist       RuleCheck = "must-exist"
	RuleMustBeDirectory RuleCheck = "must-be-directory"
	RuleMustBeFile      RuleCheck = "must-be-file"
	RuleMustBeReadable  RuleCheck = "must-be-readable"
	RuleMustBeWritable  RuleCheck = "must-be-writable"
)

// ValidationRule is one filesystem check. Optional rules are advisory:
// a failure is logged but does not reject the path.
type ValidationRule struct {
	Check    RuleCheck
	Optional bool
}

// CustomRule is an application-specific predicate over a candidate path,
// expressed as a boolean expression with env: path, base, exists.
type CustomRule struct {
	Expression string
	Reason     string
	program    *vm.Program
}

// NewCustomRule compiles the predicate expression.
func NewCustomRule(expression, reason string) (*CustomRule, error) {
	program, err := expr.Compile(expression, expr.Env(predicateEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling path predicate: %w", err)
	}
	return &CustomRule{Expression: expression, Reason: reason, program: program}, nil
}

type predicateEnv map[string]any

// Policy is a reusable path-resolution strategy: an anchoring mode, a
// base directory, ordered fallback directories, and validation rules.
type Policy struct {
	strategy  Strategy
	baseDir   string
	workDir   string
	fallbacks []string
	rules     []ValidationRule
	custom    *CustomRule
}

// PolicyOption configures a Policy.
type PolicyOption func(*Policy)

// WithFallbacks sets the ordered fallback base directories.
func WithFallbacks(dirs ...string) PolicyOption {
	return func(p *Policy) { p.fallbacks = append(p.fallbacks, dirs...) }
}

// WithRules sets the validation rules.
func WithRules(rules ...ValidationRule) PolicyOption {
	return func(p *Policy) { p.rules = append(p.rules, rules...) }
}

// WithCustomRule sets the custom predicate.
func WithCustomRule(rule *CustomRule) PolicyOption {
	return func(p *Policy) { p.custom = rule }
}

// WithWorkDir overrides the process working directory (for tests).
func WithWorkDir(dir string) PolicyOption {
	return func(p *Policy) { p.workDir = dir }
}

// NewPolicy creates a Policy. The base directory must be non-empty after
// trimming.
func NewPolicy(strategy Strategy, baseDir string, opts ...PolicyOption) (*Policy, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		return nil, fmt.Errorf("policy base directory cannot be empty")
	}
	switch strategy {
	case StrategyAbsolute, StrategyRelative, StrategyWorkspace:
	default:
		return nil, fmt.Errorf("unknown path strategy %q", strategy)
	}

	p := &Policy{strategy: strategy, baseDir: baseDir}
	for _, opt := range opts {
		opt(p)
	}

	if p.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determining working directory: %w", err)
		}
		p.workDir = wd
	}
	return p, nil
}

// BaseDir returns the primary base directory, resolved to absolute.
func (p *Policy) BaseDir() string {
	return p.absBase(p.baseDir)
}

// Resolve applies the strategy to a logical path without validation.
func (p *Policy) Resolve(logical string) (string, error) {
	return p.resolveAgainst(p.baseDir, logical)
}

// ResolveWithFallbacks resolves and validates the logical path against
// the primary base directory, then each fallback in configured order.
// The first candidate passing validation wins. Every attempted path is
// carried in the error when none pass.
func (p *Policy) ResolveWithFallbacks(logical string) (string, error) {
	bases := append([]string{p.baseDir}, p.fallbacks...)
	attempted := make([]string, 0, len(bases))

	for _, base := range bases {
		candidate, err := p.resolveAgainst(base, logical)
		if err != nil {
			return "", err
		}
		attempted = append(attempted, candidate)
		if err := p.Validate(candidate); err == nil {
			return candidate, nil
		} else {
			slog.Debug("path candidate rejected", "path", candidate, "error", err)
		}
	}

	return "", &NoValidFallbackError{Attempted: attempted}
}

// Validate runs the configured rules against the path. Required rules
// must all pass; optional rule failures are logged and ignored.
func (p *Policy) Validate(path string) error {
	for _, rule := range p.rules {
		if err := checkRule(rule.Check, path); err != nil {
			if rule.Optional {
				slog.Debug("advisory path rule failed", "path", path, "rule", rule.Check)
				continue
			}
			return err
		}
	}
	if p.custom != nil {
		_, statErr := os.Stat(path)
		out, err := expr.Run(p.custom.program, predicateEnv{
			"path":   path,
			"base":   p.BaseDir(),
			"exists": statErr == nil,
		})
		if err != nil {
			return fmt.Errorf("running path predicate: %w", err)
		}
		if ok, _ := out.(bool); !ok {
			return &RuleViolationError{Path: path, Rule: "custom", Reason: p.custom.Reason}
		}
	}
	return nil
}

func (p *Policy) resolveAgainst(base, logical string) (string, error) {
	absBase := p.absBase(base)

	switch p.strategy {
	case StrategyAbsolute:
		if filepath.IsAbs(logical) {
			return filepath.Clean(logical), nil
		}
		return filepath.Join(absBase, logical), nil
	case StrategyRelative:
		return filepath.Join(p.workDir, base, logical), nil
	case StrategyWorkspace:
		logical = strings.TrimPrefix(filepath.Clean(logical), string(filepath.Separator))
		return filepath.Join(absBase, logical), nil
	default:
		return "", fmt.Errorf("unknown path strategy %q", p.strategy)
	}
}

func (p *Policy) absBase(base string) string {
	if filepath.IsAbs(base) {
		return filepath.Clean(base)
	}
	return filepath.Join(p.workDir, base)
}

func checkRule(check RuleCheck, path string) error {
	switch check {
	case RuleMustExist:
		if _, err := os.Stat(path); err != nil {
			return &RuleViolationError{Path: path, Rule: string(check), Reason: "does not exist"}
		}
	case RuleMustBeDirectory:
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return &RuleViolationError{Path: path, Rule: string(check), Reason: "not a directory"}
		}
	case RuleMustBeFile:
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return &RuleViolationError{Path: path, Rule: string(check), Reason: "not a regular file"}
		}
	case RuleMustBeReadable:
		f, err := os.Open(path)
		if err != nil {
			return &RuleViolationError{Path: path, Rule: string(check), Reason: "not readable"}
		}
		f.Close()
	case RuleMustBeWritable:
		if err := probeWritable(path); err != nil {
			return &RuleViolationError{Path: path, Rule: string(check), Reason: "not writable"}
		}
	default:
		return &RuleViolationError{Path: path, Rule: string(check), Reason: "unknown rule"}
	}
	return nil
}

// probeWritable checks writability with a single probe: opening the file
// for writing, or creating and removing a probe file inside a directory.
func probeWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		probe, err := os.CreateTemp(path, ".breakdown-probe-*")
		if err != nil {
			return err
		}
		name := probe.Name()
		probe.Close()
		return os.Remove(name)
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}
