package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/team99/golox/internal/ast"
	"github.com/team99/golox/internal/interp"
	"github.com/team99/golox/internal/loxerr"
	"github.com/team99/golox/internal/parser"
	"github.com/team99/golox/internal/resolver"
	"github.com/team99/golox/internal/scanner"
)

var (
	evalExpr  string
	dumpAST   bool
	astJSON   bool
	astQuery  string
	astSet    string
	noResolve bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lox script, an inline expression, or start a REPL",
	Long: `Execute a Lox program from a file, an inline expression, or an
interactive prompt when no script and no -e is given.

Examples:
  golox run script.lox
  golox run -e "print 1 + 2;"
  golox run --dump-ast script.lox
  golox run --ast-json --query "0.node" script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print each expression statement's AST as an S-expression before running")
	runCmd.Flags().BoolVar(&astJSON, "ast-json", false, "print the parsed AST as JSON instead of executing it")
	runCmd.Flags().StringVar(&astQuery, "query", "", "gjson path to extract from the --ast-json output")
	runCmd.Flags().StringVar(&astSet, "set", "", "sjson PATH=VALUE to patch into the --ast-json output before printing")
	runCmd.Flags().BoolVar(&noResolve, "no-resolve", false, "skip static resolution (locals fall back to global lookup)")
}

func runScript(_ *cobra.Command, args []string) error {
	switch {
	case evalExpr != "":
		return runSource(evalExpr, "<eval>")
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return withExitCode(70, fmt.Errorf("reading %s: %w", args[0], err))
		}
		return runSource(string(content), args[0])
	default:
		return runREPL()
	}
}

// runSource runs one complete compilation unit: scan, parse, optionally
// resolve, then either print the AST as JSON or interpret it (after
// printing expression statements as S-expressions when --dump-ast is set).
func runSource(source, filename string) error {
	reporter := loxerr.NewReporter(source, filename)

	sc := scanner.New(source)
	tokens := sc.ScanTokens()
	for _, e := range sc.Errors() {
		reporter.Report(e.Pos, e.Message)
	}

	p := parser.New(tokens)
	statements := p.Parse()
	for _, e := range p.Errors() {
		reporter.ReportToken(e.Token, e.Message)
	}

	var locals map[ast.Expr]int
	if !noResolve && !reporter.HadError() {
		r := resolver.New()
		r.Resolve(statements)
		for _, e := range r.Errors() {
			reporter.ReportToken(e.Token, e.Message)
		}
		locals = r.Locals()
	}

	if reporter.HadError() {
		fmt.Fprintln(os.Stderr, loxerr.FormatAll(reporter.Errors(), true))
		return withExitCode(65, fmt.Errorf("%s: failed with %d error(s)", filename, len(reporter.Errors())))
	}

	if astJSON {
		return printASTJSON(statements)
	}
	if dumpAST {
		for _, s := range statements {
			if es, ok := s.(*ast.Expression); ok {
				fmt.Println(ast.Print(es.Expression))
			}
		}
	}

	i := interp.New(os.Stdout)
	i.SetLocals(locals)
	if err := i.Interpret(statements); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			reporter.ReportRuntime(rerr.Token.Pos, rerr.Message)
			fmt.Fprintln(os.Stderr, loxerr.FormatAll(reporter.Errors(), true))
			return withExitCode(70, fmt.Errorf("%s: runtime error", filename))
		}
		return withExitCode(70, err)
	}
	return nil
}

func printASTJSON(statements []ast.Stmt) error {
	data, err := json.Marshal(ast.ToJSON(statements))
	if err != nil {
		return withExitCode(70, err)
	}

	text := string(data)
	if astSet != "" {
		path, value, ok := splitSetFlag(astSet)
		if !ok {
			return withExitCode(64, fmt.Errorf("--set expects PATH=VALUE, got %q", astSet))
		}
		patched, err := sjson.Set(text, path, value)
		if err != nil {
			return withExitCode(70, err)
		}
		text = patched
	}

	if astQuery != "" {
		result := gjson.Get(text, astQuery)
		fmt.Println(result.String())
		return nil
	}

	fmt.Println(text)
	return nil
}

func splitSetFlag(flag string) (path, value string, ok bool) {
	for i := 0; i < len(flag); i++ {
		if flag[i] == '=' {
			return flag[:i], flag[i+1:], true
		}
	}
	return "", "", false
}

// runREPL reads one line at a time, executing each against a persistent
// interpreter so that top-level var/fun/class declarations carry over.
func runREPL() error {
	i := interp.New(os.Stdout)
	scannerIn := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scannerIn.Scan() {
		line := scannerIn.Text()
		runREPLLine(i, line)
		fmt.Print("> ")
	}
	fmt.Println()
	return nil
}

func runREPLLine(i *interp.Interpreter, line string) {
	reporter := loxerr.NewReporter(line, "<repl>")

	sc := scanner.New(line)
	tokens := sc.ScanTokens()
	for _, e := range sc.Errors() {
		reporter.Report(e.Pos, e.Message)
	}

	p := parser.New(tokens)
	statements := p.Parse()
	for _, e := range p.Errors() {
		reporter.ReportToken(e.Token, e.Message)
	}
	if reporter.HadError() {
		fmt.Fprintln(os.Stderr, loxerr.FormatAll(reporter.Errors(), false))
		return
	}

	r := resolver.New()
	r.Resolve(statements)
	for _, e := range r.Errors() {
		reporter.ReportToken(e.Token, e.Message)
	}
	if reporter.HadError() {
		fmt.Fprintln(os.Stderr, loxerr.FormatAll(reporter.Errors(), false))
		return
	}

	for k, v := range r.Locals() {
		i.MergeLocal(k, v)
	}

	if err := i.Interpret(statements); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", rerr.Token.Pos.Line, rerr.Message)
			return
		}
		fmt.Fprintln(os.Stderr, err)
	}
}
