package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/team99/golox/internal/scanner"
	"github.com/team99/golox/internal/token"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Re-tokenize a Lox file as a scanner smoke test",
	Long: `fmt re-lexes a Lox source file and re-emits its token stream with
normalized spacing. It exists as a round-trip check on the scanner rather
than a full pretty-printer: a file that can't be re-tokenized cleanly
fails with the same exit code a syntax error from run would produce.

With no file argument, fmt reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtCheck, "check", "c", false, "report whether the file is already normalized, without printing it")
}

func runFmt(_ *cobra.Command, args []string) error {
	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return withExitCode(70, err)
	}

	sc := scanner.New(string(src))
	tokens := sc.ScanTokens()
	if errs := sc.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Pos.Line, e.Message)
		}
		return withExitCode(65, fmt.Errorf("fmt: %d scan error(s)", len(errs)))
	}

	normalized := normalizeTokens(tokens)

	if fmtCheck {
		if normalized == string(src) {
			return nil
		}
		return withExitCode(1, fmt.Errorf("not normalized"))
	}

	fmt.Print(normalized)
	return nil
}

// normalizeTokens re-joins a token stream with one statement-ish unit per
// line: a newline follows every ';' and every '{'/'}', everything else is
// single-space separated.
func normalizeTokens(tokens []token.Token) string {
	var b strings.Builder
	depth := 0
	for i, tok := range tokens {
		if tok.Type == token.EOF {
			break
		}
		if i > 0 {
			prev := tokens[i-1]
			if prev.Type == token.SEMICOLON || prev.Type == token.LEFT_BRACE || prev.Type == token.RIGHT_BRACE {
				b.WriteString("\n")
				b.WriteString(strings.Repeat("  ", depth))
			} else {
				b.WriteString(" ")
			}
		}
		if tok.Type == token.RIGHT_BRACE {
			depth--
		}
		b.WriteString(tok.Lexeme)
		if tok.Type == token.LEFT_BRACE {
			depth++
		}
	}
	b.WriteString("\n")
	return b.String()
}
