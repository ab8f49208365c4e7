package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/srcmodel/internal/generator"
)

// NewEntityCommand creates the new-entity command.
func NewEntityCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dir      string
		table    string
		strategy string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "new-entity <qualified-class> [name:Type...]",
		Short: "Generate a persistent entity class",
		Long: `Generate a class annotated with @Entity that has a generated id, a
version column for optimistic locking and one mapped column with accessors
per property. Properties default to String when no type is given.

The class is printed unless --write is set, in which case it is stored
below --dir following its package.`,
		Example: `  srcmodel new-entity com.example.model.Customer name age:int --table customers
  srcmodel new-entity -w -d src/main/java com.example.model.Order total:long`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := generator.EntitySpec{Name: args[0], Table: table, Strategy: strategy}
			for _, arg := range args[1:] {
				p, err := generator.ParseProperty(arg)
				if err != nil {
					return err
				}
				spec.Properties = append(spec.Properties, p)
			}
			return runNewEntity(rootOpts, cmd, dir, spec, force)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "source root the package directories are created under")
	cmd.Flags().StringVar(&table, "table", "", "table name for @Table")
	cmd.Flags().StringVar(&strategy, "strategy", "AUTO", "id generation strategy (GenerationType constant)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	return cmd
}

func runNewEntity(opts *RootOptions, cmd *cobra.Command, dir string, spec generator.EntitySpec, force bool) error {
	gen := generator.NewGenerator(opts.registry)
	gf, err := gen.GenerateEntity(dir, spec)
	if err != nil {
		return err
	}
	opts.diagnostics.Summary(spec.Name, map[string]interface{}{
		"path":       gf.FilePath,
		"properties": len(spec.Properties),
		"imports":    len(gf.File.Imports()),
	})

	if !opts.config.Write {
		_, err := fmt.Fprint(cmd.OutOrStdout(), gf.Content)
		return err
	}
	if err := generator.Write(gf, force); err != nil {
		return err
	}
	opts.diagnostics.Success("created %s", gf.FilePath)
	return nil
}
