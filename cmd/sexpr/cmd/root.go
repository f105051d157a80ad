package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	sexpr "github.com/xiam/sexpr-parser"
	"github.com/xiam/sexpr-parser/ast"
	"github.com/xiam/sexpr-parser/config"
	"github.com/xiam/sexpr-parser/parser"
)

type rootOptions struct {
	cfgFile       string
	strict        bool
	rejectUnknown bool
	format        string
	verbose       bool
}

// NewRootCommand builds the sexpr command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sexpr <code>",
		Short: "Parse an s-expression and print its syntax tree",
		Long: `sexpr parses a single s-expression and prints the resulting tree.

  $ sexpr "(first (list 1 (+ 2 3) 9))"
  ["first", ["list", 1, ["+", 2, 3], 9]]

Numbers are unsigned 64-bit integers, identifiers start with a letter and "+"
is an identifier on its own.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Usage: sexpr <code>")
				fmt.Fprint(cmd.ErrOrStderr(), cmd.Flags().FlagUsages())
				return nil
			}
			return run(cmd, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVar(&opts.strict, "strict", false, "fail when tokens follow the first expression")
	flags.BoolVar(&opts.rejectUnknown, "reject-unknown", false, "fail on characters that can't start a token")
	flags.StringVar(&opts.format, "format", config.FormatArray, "output format: array, sexpr or tree")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every token to stderr")

	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the command with os.Args and reports errors to stderr
func Execute() error {
	return execute(NewRootCommand())
}

func execute(rootCmd *cobra.Command) error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintf(w, "Unexpected token: %s\n", serr.Desc)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return nil, err
		}
	}

	// explicit flags win over the config file
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Parser.Strict = opts.strict
	}
	if flags.Changed("reject-unknown") {
		cfg.Scanner.Unknown = config.UnknownSkip
		if opts.rejectUnknown {
			cfg.Scanner.Unknown = config.UnknownReject
		}
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = opts.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions, code string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	popts := cfg.ParserOptions()

	var logger *log.Logger
	if cfg.Log.Verbose {
		logger = log.New(cmd.ErrOrStderr(), "sexpr: ", 0)
		popts.Lexer.Logger = logger
	}

	r := sexpr.NewReader(strings.NewReader(code))
	r.SetOptions(popts)

	root, err := r.Parse()
	if err != nil {
		if logger != nil {
			logger.Printf("parse failed: %v", err)
		}
		return err
	}

	if logger != nil {
		logger.Printf("parsed %s: %v", root.Type(), root)
	}
	return render(cmd.OutOrStdout(), root, cfg.Output.Format)
}

func render(w io.Writer, root *ast.Node, format string) error {
	switch format {
	case config.FormatArray:
		_, err := fmt.Fprintln(w, string(ast.Encode(root)))
		return err
	case config.FormatSexpr:
		_, err := fmt.Fprintln(w, string(ast.EncodeSexpr(root)))
		return err
	case config.FormatTree:
		ast.Print(w, root)
		return nil
	}
	return fmt.Errorf("%w: output.format = %q", config.ErrInvalidValue, format)
}
