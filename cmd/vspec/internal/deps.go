package internal

import (
	"fmt"

	"github.com/goplus/vspec/internal/build"
	"github.com/spf13/cobra"
)

var depsVariants string
var depsSet []string

var depsCmd = &cobra.Command{
	Use:   "deps [formula]",
	Short: "List the dependencies selected by a variant assignment",
	Long: `Deps assigns the formula's variants, starting from their defaults and
applying the overrides given with -V and -s, and prints the dependencies
selected by the assignment in declaration order.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().StringVarP(&depsVariants, "variants", "V", "", "Variant overrides, e.g. +mpi~hdf5")
	depsCmd.Flags().StringSliceVarP(&depsSet, "set", "s", nil, "Variant override as name=bool (repeatable)")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	f, err := loadFormula(args[0])
	if err != nil {
		return err
	}
	overrides, err := parseOverrides(depsVariants, depsSet)
	if err != nil {
		return err
	}

	a, deps, err := build.NewBuilder().Resolve(cmd.Context(), build.Options{
		Formula:   f,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", f.Name, a)
	for _, d := range deps {
		fmt.Fprintf(out, "%s (%s)\n", d, d.Phases)
	}
	return nil
}
