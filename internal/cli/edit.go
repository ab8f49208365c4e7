package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/source"
	"github.com/toyz/srcmodel/internal/utils"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <selector> <annotation>",
		Short: "Add an annotation to a declaration",
		Long: `Add an annotation to the selected declaration.

The annotation is either a name (Column, javax.persistence.Column) or
full annotation text such as '@Column(name = "id")'. Known types are
imported unless imports are disabled in the config file.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args[0], args[1], args[2])
		},
	}
}

func runAdd(opts *RootOptions, cmd *cobra.Command, path, selector, spec string) error {
	f, sel, err := opts.load(path, selector)
	if err != nil {
		return err
	}

	var a *annotations.Annotation
	if strings.HasPrefix(strings.TrimSpace(spec), "@") {
		a, err = opts.parser.ParseAnnotation(sel.Target, spec)
		if err != nil {
			return err
		}
		if info, known := opts.registry.LookupType(a.Name()); known && opts.config.Imports && a.Name() == a.SimpleName() {
			f.AddImport(info.Type)
		}
	} else {
		a, err = opts.addByName(sel, spec)
		if err != nil {
			return err
		}
	}

	opts.diagnostics.Verbose("added %s to %s %s", a.Render(), sel.Kind, sel.Selector)
	return opts.save(cmd, f)
}

func (o *RootOptions) addByName(sel source.Selection, name string) (*annotations.Annotation, error) {
	info, known := o.registry.LookupType(name)
	switch {
	case !known:
		o.diagnostics.Verbose("@%s is not a registered type, adding it by name", name)
		return sel.Target.AddNamedAnnotation(name)
	case o.config.Imports:
		return sel.Target.AddTypeAnnotation(info.Type)
	default:
		return sel.Target.AddNamedAnnotation(info.Type.QualifiedName())
	}
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	var asString, asEnum bool

	cmd := &cobra.Command{
		Use:   "set <file> <selector> <annotation> [name=]value...",
		Short: "Set values on an annotation",
		Long: `Set one or more values on the first matching annotation of the selected
declaration. A value without a name sets the default value.

Values are written as given unless --string quotes them or --enum
resolves them as Type.CONSTANT against the known enum types.`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(rootOpts, cmd, args[0], args[1], args[2], args[3:], asString, asEnum)
		},
	}

	cmd.Flags().BoolVarP(&asString, "string", "s", false, "quote values as string literals")
	cmd.Flags().BoolVarP(&asEnum, "enum", "e", false, "resolve values as enum constants")
	cmd.MarkFlagsMutuallyExclusive("string", "enum")
	return cmd
}

func runSet(opts *RootOptions, cmd *cobra.Command, path, selector, name string, assignments []string, asString, asEnum bool) error {
	f, sel, err := opts.load(path, selector)
	if err != nil {
		return err
	}
	a, err := opts.annotation(sel, name)
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		key, value := splitAssignment(assignment)
		switch {
		case asString:
			a.SetNamedString(key, value)
		case asEnum:
			constant, err := opts.registry.ResolveConstant(value)
			if err != nil {
				return err
			}
			a.SetNamedEnum(key, constant)
			if opts.config.Imports {
				f.AddImport(constant.Type.TypeRef)
			}
		default:
			a.SetNamedLiteral(key, value)
		}
	}

	opts.diagnostics.Verbose("%s is now %s", sel.Selector, a.Render())
	return opts.save(cmd, f)
}

// splitAssignment splits "name=value". Anything not starting with an
// identifier and a single '=' is a value for the default slot.
func splitAssignment(arg string) (string, string) {
	i := strings.Index(arg, "=")
	if i <= 0 || strings.HasPrefix(arg[i:], "==") {
		return "", arg
	}
	name := strings.TrimSpace(arg[:i])
	if !utils.IsIdentifier(name) {
		return "", arg
	}
	return name, strings.TrimSpace(arg[i+1:])
}

// NewUnsetCommand creates the unset command.
func NewUnsetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <file> <selector> <annotation> <name>...",
		Short: "Remove named values from an annotation",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sel, err := rootOpts.load(args[0], args[1])
			if err != nil {
				return err
			}
			a, err := rootOpts.annotation(sel, args[2])
			if err != nil {
				return err
			}
			for _, key := range args[3:] {
				if !a.RemoveValue(key) {
					return errors.NewMissingValueError(a.Name(), key)
				}
			}
			return rootOpts.save(cmd, f)
		},
	}
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <selector> <annotation>",
		Short: "Remove the first matching annotation from a declaration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sel, err := rootOpts.load(args[0], args[1])
			if err != nil {
				return err
			}
			a, err := rootOpts.annotation(sel, args[2])
			if err != nil {
				return err
			}
			if err := sel.Target.RemoveAnnotation(a); err != nil {
				return err
			}
			rootOpts.diagnostics.Verbose("removed %s from %s", a.Render(), sel.Selector)
			return rootOpts.save(cmd, f)
		},
	}
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <file> <selector> <annotation>",
		Short: "Remove every value of an annotation, leaving a marker",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sel, err := rootOpts.load(args[0], args[1])
			if err != nil {
				return err
			}
			a, err := rootOpts.annotation(sel, args[2])
			if err != nil {
				return err
			}
			a.RemoveAll()
			return rootOpts.save(cmd, f)
		},
	}
}
