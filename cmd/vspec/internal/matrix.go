package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [formula]",
	Short: "Print the dependencies of every variant combination",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	f, err := loadFormula(args[0])
	if err != nil {
		return err
	}
	m := f.Matrix()
	out := cmd.OutOrStdout()
	for _, a := range m.Combinations() {
		deps, err := f.Resolve(a)
		if err != nil {
			return fmt.Errorf("%s%s: %w", f.Name, a, err)
		}
		names := make([]string, len(deps))
		for i, d := range deps {
			names[i] = d.String()
		}
		fmt.Fprintf(out, "%s: %s\n", a, strings.Join(names, " "))
	}
	return nil
}
