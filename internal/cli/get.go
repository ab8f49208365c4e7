package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/srcmodel/internal/annotations"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var asString, asEnum bool

	cmd := &cobra.Command{
		Use:   "get <file> <selector> <annotation> [name]",
		Short: "Print a value of an annotation",
		Long: `Print one value of the first matching annotation, the default value
when no name is given. --string prints the unquoted string and --enum
prints the qualified enum constant.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := annotations.DefaultValueName
			if len(args) == 4 {
				name = args[3]
			}
			return runGet(rootOpts, cmd, args[0], args[1], args[2], name, asString, asEnum)
		},
	}

	cmd.Flags().BoolVarP(&asString, "string", "s", false, "print the value as an unquoted string")
	cmd.Flags().BoolVarP(&asEnum, "enum", "e", false, "print the value as a qualified enum constant")
	cmd.MarkFlagsMutuallyExclusive("string", "enum")
	return cmd
}

func runGet(opts *RootOptions, cmd *cobra.Command, path, selector, annotation, name string, asString, asEnum bool) error {
	_, sel, err := opts.load(path, selector)
	if err != nil {
		return err
	}
	a, err := opts.annotation(sel, annotation)
	if err != nil {
		return err
	}

	var value string
	switch {
	case asString:
		value, err = a.RequireString(name)
	case asEnum:
		value, err = enumValue(opts, a, name)
	default:
		value, err = a.RequireLiteral(name)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

// enumValue decodes the value against the enum type its literal names
func enumValue(opts *RootOptions, a *annotations.Annotation, name string) (string, error) {
	literal, err := a.RequireLiteral(name)
	if err != nil {
		return "", err
	}
	resolved, err := opts.registry.ResolveConstant(literal)
	if err != nil {
		return "", err
	}
	constant, err := a.NamedEnum(resolved.Type, name)
	if err != nil {
		return "", err
	}
	return constant.Type.QualifiedName() + "." + constant.Name, nil
}
