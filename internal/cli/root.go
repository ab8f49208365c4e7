package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/parser"
	"github.com/toyz/srcmodel/internal/registry"
	"github.com/toyz/srcmodel/internal/source"
	"github.com/toyz/srcmodel/internal/utils"
)

// RootOptions holds global flags and the state built from them before
// a subcommand runs.
type RootOptions struct {
	Verbose    bool
	Quiet      bool
	NoColor    bool
	Write      bool
	ConfigPath string

	config      *Config
	diagnostics *utils.DiagnosticSystem
	registry    registry.Registry
	parser      *parser.Parser
}

// NewRootCommand creates the root command for the srcmodel CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srcmodel",
		Short: "Inspect and edit annotations in source files",
		Long: `srcmodel parses class declarations, lets you query and edit the
annotations on classes, fields, methods and parameters, and writes the
source back out.

Declarations are addressed with selectors: Class, Class.member or
Class.method.parameter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "only show errors")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.Write, "write", "w", false, "rewrite edited files in place")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default "+DefaultConfigFile+" if present)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewUnsetCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewEntityCommand(opts))

	return cmd
}

// Execute runs the CLI and reports any error. It returns the process
// exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		diagnostics := opts.diagnostics
		if diagnostics == nil {
			diagnostics = utils.NewQuietDiagnostics().WithWriter(stderr)
		}
		NewErrorReporter(diagnostics, opts.Verbose).Report(err)
		return 1
	}
	return 0
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = o.Quiet
	}
	if flags.Changed("write") {
		cfg.Write = o.Write
	}
	if cfg.Quiet && cfg.Verbose {
		return errors.ConfigurationError("flags", "--verbose and --quiet cannot be combined")
	}
	o.Verbose = cfg.Verbose
	o.config = cfg

	level := utils.DiagnosticInfo
	switch {
	case cfg.Quiet:
		level = utils.DiagnosticError
	case cfg.Verbose:
		level = utils.DiagnosticVerbose
	}
	o.diagnostics = utils.NewDiagnosticSystem(level).WithWriter(cmd.ErrOrStderr())
	if cfg.Color != nil {
		o.diagnostics.WithColors(*cfg.Color)
	}
	if o.NoColor {
		o.diagnostics.WithColors(false)
	}

	o.registry, err = o.buildRegistry(cfg)
	if err != nil {
		return err
	}
	o.parser = parser.NewParser()
	return nil
}

func (o *RootOptions) buildRegistry(cfg *Config) (registry.Registry, error) {
	if !cfg.HasExtraTypes() {
		return registry.DefaultRegistry(), nil
	}
	extra, err := cfg.Extra()
	if err != nil {
		return nil, err
	}
	r := registry.NewRegistry()
	if err := registry.RegisterBuiltins(r); err != nil {
		return nil, err
	}
	if err := registry.RegisterExtra(r, extra); err != nil {
		return nil, err
	}
	o.diagnostics.Verbose("registered %d extra annotation types and %d enums", len(extra.Annotations), len(extra.Enums))
	return r, nil
}

// load parses path and resolves selector in it
func (o *RootOptions) load(path, selector string) (*source.File, source.Selection, error) {
	o.diagnostics.Verbose("parsing %s", path)
	f, err := o.parser.ParseFile(path)
	if err != nil {
		return nil, source.Selection{}, err
	}
	if selector == "" {
		return f, source.Selection{}, nil
	}
	sel, err := f.Select(selector)
	if err != nil {
		return nil, source.Selection{}, err
	}
	o.diagnostics.Verbose("selected %s %s", sel.Kind, sel.Selector)
	return f, sel, nil
}

// save prints the edited file, or rewrites it when writing is enabled
func (o *RootOptions) save(cmd *cobra.Command, f *source.File) error {
	content := f.String()
	if !o.config.Write {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	info, err := os.Stat(f.Path)
	if err != nil {
		return errors.WrapFileSystemError("stat", f.Path, err)
	}
	if err := os.WriteFile(f.Path, []byte(content), info.Mode().Perm()); err != nil {
		return errors.WrapFileSystemError("write", f.Path, err)
	}
	o.diagnostics.Success("updated %s", f.Path)
	return nil
}

// annotation finds the first annotation on sel matching name
func (o *RootOptions) annotation(sel source.Selection, name string) (*annotations.Annotation, error) {
	name = strings.TrimPrefix(name, "@")
	if a, ok := sel.Target.Annotation(name); ok {
		return a, nil
	}
	return nil, errors.NewLookupError(name, fmt.Sprintf("annotation @%s is not present on %s %s", name, sel.Kind, sel.Selector)).
		WithSuggestion("Run 'srcmodel list <file> " + sel.Selector + "' to see its annotations")
}
