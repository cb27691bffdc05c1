package internal

import (
	"fmt"

	"github.com/goplus/vspec/internal/build"
	"github.com/goplus/vspec/internal/env"
	"github.com/goplus/vspec/pkgs/buildsys"
	"github.com/goplus/vspec/pkgs/buildsys/autotools"
	"github.com/goplus/vspec/pkgs/buildsys/cmake"
	"github.com/goplus/vspec/pkgs/mod/versions"
	"github.com/spf13/cobra"
)

var (
	argsVariants    string
	argsSet         []string
	argsResolved    string
	argsNames       string
	argsPrefix      string
	argsBuildSystem string
	argsKey         bool
	argsConfigure   bool
	argsSource      string
)

var argsCmd = &cobra.Command{
	Use:   "args [formula]",
	Short: "Print the configure arguments for a variant assignment",
	Long: `Args resolves the formula's dependencies for a variant assignment, looks up
their install locations in the resolution manifest and prints the arguments
for the chosen build system, one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runArgs,
}

func init() {
	flags := argsCmd.Flags()
	flags.StringVarP(&argsVariants, "variants", "V", "", "Variant overrides, e.g. +mpi~hdf5")
	flags.StringSliceVarP(&argsSet, "set", "s", nil, "Variant override as name=bool (repeatable)")
	flags.StringVarP(&argsResolved, "resolved", "r", env.Get(env.Resolved, ""), "Resolution manifest (YAML)")
	flags.StringVarP(&argsNames, "names", "n", env.Get(env.Names, ""), "Flag naming table (TOML)")
	flags.StringVarP(&argsPrefix, "prefix", "p", env.Get(env.Prefix, ""), "Install prefix, defaults to the manifest prefix")
	flags.StringVarP(&argsBuildSystem, "build-system", "b", env.Get(env.BuildSystem, build.DefaultBuildSystem), "Build system (cmake, autotools)")
	flags.BoolVar(&argsKey, "key", false, "Print the cache key of the arguments instead")
	flags.BoolVar(&argsConfigure, "configure", false, "Print the full configure command line")
	flags.StringVar(&argsSource, "source", ".", "Source directory for --configure with cmake")
	rootCmd.AddCommand(argsCmd)
}

func runArgs(cmd *cobra.Command, args []string) error {
	f, err := loadFormula(args[0])
	if err != nil {
		return err
	}
	overrides, err := parseOverrides(argsVariants, argsSet)
	if err != nil {
		return err
	}
	if argsResolved == "" {
		return fmt.Errorf("no resolution manifest given, use -r or %s", env.Resolved)
	}
	manifest, err := versions.Parse(argsResolved, nil)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	var table buildsys.Table
	if argsNames != "" {
		if table, err = buildsys.LoadTable(argsNames); err != nil {
			return fmt.Errorf("failed to load naming table: %w", err)
		}
	}

	plan, err := build.NewBuilder().Plan(cmd.Context(), build.Options{
		Formula:     f,
		Overrides:   overrides,
		Manifest:    manifest,
		Table:       table,
		Prefix:      argsPrefix,
		BuildSystem: argsBuildSystem,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if argsKey {
		fmt.Fprintln(out, plan.Key)
		return nil
	}
	lines := plan.Args
	if argsConfigure {
		prefix := argsPrefix
		if prefix == "" {
			prefix = manifest.Prefix
		}
		switch plan.BuildSystem {
		case "cmake":
			lines = cmake.ConfigureArgs(argsSource, "", prefix, plan.Args)
		case "autotools":
			lines = autotools.ConfigureArgs(prefix, plan.Args)
		}
	}
	for _, arg := range lines {
		fmt.Fprintln(out, arg)
	}
	return nil
}
