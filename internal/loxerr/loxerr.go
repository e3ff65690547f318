// Package loxerr formats diagnostics for the host (CLI, REPL, or any other
// embedder of the interpreter) with source context: line/column
// information and a caret pointing at the offending column.
package loxerr

import (
	"fmt"
	"strings"

	"github.com/team99/golox/internal/token"
)

// SourceError is a single diagnostic tied to a source position. Scanner,
// parser, and resolver errors are all adapted to this shape by the host
// before formatting.
type SourceError struct {
	Pos     token.Position
	Where   string // e.g. "at end", "at 'foo'" — empty when not applicable
	Message string
	Source  string
	File    string
}

func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source-line excerpt and a caret under
// the offending column. With color true, ANSI codes highlight the caret
// and message the way a terminal-facing CLI would.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "line %d: ", e.Pos.Line)
	}

	if e.Where != "" {
		fmt.Fprintf(&sb, "Error %s: %s\n", e.Where, e.Message)
	} else {
		fmt.Fprintf(&sb, "Error: %s\n", e.Message)
	}

	line := sourceLine(e.Source, e.Pos.Line)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of errors, each separated by a blank line.
func FormatAll(errs []*SourceError, color bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(color)
	}
	return strings.Join(parts, "\n\n")
}

// AtToken builds a SourceError from a token the way the parser and
// resolver report them: "at end" for the synthetic EOF token, "at
// 'LEXEME'" otherwise.
func AtToken(tok token.Token, message, source, file string) *SourceError {
	where := "at '" + tok.Lexeme + "'"
	if tok.Type == token.EOF {
		where = "at end"
	}
	return &SourceError{Pos: tok.Pos, Where: where, Message: message, Source: source, File: file}
}

// Reporter accumulates diagnostics across a scan/parse/resolve pipeline
// and tracks whether any stage failed, the way a REPL needs to reset its
// "had error" flag between lines but a batch run needs to pick an exit
// code from it.
type Reporter struct {
	Source     string
	File       string
	errors     []*SourceError
	hadRuntime bool
}

// NewReporter creates a Reporter for a single compilation unit.
func NewReporter(source, file string) *Reporter {
	return &Reporter{Source: source, File: file}
}

// Report appends a static (scan/parse/resolve) diagnostic.
func (r *Reporter) Report(pos token.Position, message string) {
	r.errors = append(r.errors, &SourceError{Pos: pos, Message: message, Source: r.Source, File: r.File})
}

// ReportToken appends a diagnostic anchored to a token.
func (r *Reporter) ReportToken(tok token.Token, message string) {
	r.errors = append(r.errors, AtToken(tok, message, r.Source, r.File))
}

// ReportRuntime records a runtime failure. Only one can be live at a time
// since runtime errors halt execution rather than accumulate.
func (r *Reporter) ReportRuntime(pos token.Position, message string) {
	r.hadRuntime = true
	r.errors = append(r.errors, &SourceError{Pos: pos, Message: message, Source: r.Source, File: r.File})
}

// HadError reports whether any static diagnostic was recorded.
func (r *Reporter) HadError() bool { return len(r.errors) > 0 && !r.hadRuntime }

// HadRuntimeError reports whether a runtime error was recorded.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntime }

// Errors returns every diagnostic recorded so far.
func (r *Reporter) Errors() []*SourceError { return r.errors }

// Reset clears all recorded diagnostics, for REPL reuse across lines.
func (r *Reporter) Reset() {
	r.errors = nil
	r.hadRuntime = false
}

// ExitCode follows the conventional sysexits.h-derived convention: 65 for
// a data/usage error in the input (static diagnostics), 70 for an
// internal/runtime failure, 0 otherwise.
func (r *Reporter) ExitCode() int {
	switch {
	case r.hadRuntime:
		return 70
	case len(r.errors) > 0:
		return 65
	default:
		return 0
	}
}
