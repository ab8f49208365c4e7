package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyz/srcmodel/internal/source"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list <file> [selector]",
		Short: "List declarations and their annotations",
		Long: `List every annotatable declaration in a file with its annotations and
their shapes. With a selector only that declaration is shown.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := ""
			if len(args) == 2 {
				selector = args[1]
			}
			return runList(rootOpts, cmd, args[0], selector, all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include declarations without annotations")
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command, path, selector string, all bool) error {
	f, sel, err := opts.load(path, selector)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if selector != "" {
		writeSelection(out, sel)
		return nil
	}

	shown := 0
	for _, decl := range f.Declarations() {
		if !all && len(decl.Target.Annotations()) == 0 {
			continue
		}
		writeSelection(out, decl)
		shown++
	}
	opts.diagnostics.Summary(path, map[string]interface{}{
		"declarations": len(f.Declarations()),
		"shown":        shown,
		"imports":      len(f.Imports()),
	})
	return nil
}

func writeSelection(w io.Writer, sel source.Selection) {
	fmt.Fprintf(w, "%s %s\n", sel.Kind, sel.Selector)
	for _, a := range sel.Target.Annotations() {
		fmt.Fprintf(w, "    %s [%s]\n", a.Render(), a.Shape())
	}
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print a file as the model renders it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := rootOpts.load(args[0], "")
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.String())
			return err
		},
	}
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the known annotation and enum types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "annotations:")
			for _, info := range rootOpts.registry.ListTypes() {
				if info.Description == "" {
					fmt.Fprintf(out, "    @%s\n", info.Type.QualifiedName())
					continue
				}
				fmt.Fprintf(out, "    @%s  %s\n", info.Type.QualifiedName(), info.Description)
			}
			fmt.Fprintln(out, "enums:")
			for _, enum := range rootOpts.registry.ListEnums() {
				fmt.Fprintf(out, "    %s {%s}\n", enum.QualifiedName(), strings.Join(enum.Constants(), ", "))
			}
			return nil
		},
	}
}
