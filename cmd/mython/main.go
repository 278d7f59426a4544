// Command mython lexes, parses, and evaluates Mython source files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opal-lang/mython/internal/codec"
	"github.com/opal-lang/mython/internal/config"
	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/lexer"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/parser"
	"github.com/opal-lang/mython/internal/token"
	"github.com/opal-lang/mython/internal/version"
	"github.com/opal-lang/mython/internal/watch"
)

// Exit code constants, one per failure category a run can hit.
const (
	ExitSuccess          = 0
	ExitRuntimeError     = 1
	ExitInvalidArguments = 2
	ExitIOError          = 3
	ExitParseError       = 4
)

// exitError carries the process exit code alongside the message cobra
// prints, so a single `return err` from RunE picks the right code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	rootCmd := &cobra.Command{
		Use:           "mython",
		Short:         "Lex, parse, and evaluate Mython source files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newRunCmd(), newTokensCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := ExitRuntimeError
		if ee, ok := err.(*exitError); ok {
			code = ee.code
		}
		os.Exit(code)
	}
}

func newRunCmd() *cobra.Command {
	var configPath string
	var watchFlag bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate a Mython source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return &exitError{code: ExitInvalidArguments, err: err}
			}

			runOnce := func() error {
				return runFile(path, cfg)
			}

			if !watchFlag {
				return runOnce()
			}

			return watch.Run(path, runOnce, func(err error) {
				fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a mython.yaml configuration file")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "re-run the file whenever it changes on disk")
	return cmd
}

func newTokensCmd() *cobra.Command {
	var useCBOR bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream for a Mython source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return &exitError{code: ExitIOError, err: fmt.Errorf("read %s: %w", args[0], err)}
			}

			tokens, err := lexAll(src)
			if err != nil {
				return &exitError{code: ExitParseError, err: err}
			}

			if !useCBOR {
				if err := codec.WriteText(os.Stdout, tokens); err != nil {
					return &exitError{code: ExitIOError, err: err}
				}
				return nil
			}

			dumped := make([]codec.DumpedToken, len(tokens))
			for i, t := range tokens {
				dumped[i] = codec.Dump(t)
			}
			data, err := codec.MarshalCBOR(dumped)
			if err != nil {
				return &exitError{code: ExitRuntimeError, err: err}
			}
			if _, err := os.Stdout.Write(data); err != nil {
				return &exitError{code: ExitIOError, err: err}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useCBOR, "cbor", false, "emit the token stream as canonical CBOR instead of text")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the interpreter's build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := version.Validate(); err != nil {
				return &exitError{code: ExitRuntimeError, err: err}
			}
			fmt.Println(version.String())
			return nil
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// lexAll drains a lexer into a slice, stopping at Eof or the first
// illegal token it reports.
func lexAll(src []byte) ([]token.Token, error) {
	l := lexer.New(src)
	var tokens []token.Token
	for {
		if err := l.LastError(); err != nil {
			return nil, err
		}
		tok := l.Current()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
		l.Next()
	}
}

func runFile(path string, cfg *config.Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: ExitIOError, err: fmt.Errorf("read %s: %w", path, err)}
	}

	program, err := parser.New(src).ParseProgram()
	if err != nil {
		return &exitError{code: ExitParseError, err: err}
	}

	closure := object.NewClosure()
	ctx := eval.NewContext(os.Stdout, cfg.MaxCallDepth, cfg.TraceEvaluation)

	_, _, err = program.Evaluate(closure, ctx)
	if err != nil {
		return &exitError{code: ExitRuntimeError, err: err}
	}
	return nil
}
