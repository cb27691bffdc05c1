package internal

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [formula]",
	Short: "Show formula metadata, releases, variants and dependencies",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	f, err := loadFormula(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", f.Name)
	if f.Meta.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", f.Meta.Description)
	}
	if f.Meta.Homepage != "" {
		fmt.Fprintf(w, "Homepage:\t%s\n", f.Meta.Homepage)
	}
	if f.Meta.License != "" {
		fmt.Fprintf(w, "License:\t%s\n", f.Meta.License)
	}
	if len(f.Meta.Maintainers) > 0 {
		fmt.Fprintf(w, "Maintainers:\t%s\n", strings.Join(f.Meta.Maintainers, ", "))
	}
	for _, r := range f.Releases() {
		fmt.Fprintf(w, "Release:\t%s\t%s\n", r.Version, r.SHA256)
	}
	for _, v := range f.Variants() {
		def := "~"
		if v.Default {
			def = "+"
		}
		fmt.Fprintf(w, "Variant:\t%s%s\t%s\n", def, v.Name, v.Description)
	}
	for _, d := range f.Dependencies() {
		when := "always"
		if d.IsConditional() {
			when = "when " + d.When.String()
		}
		fmt.Fprintf(w, "Depends:\t%s\t%s\t%s\n", d, d.Phases, when)
	}
	return w.Flush()
}
