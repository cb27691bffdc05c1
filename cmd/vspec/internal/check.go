package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [formula]",
	Short: "Validate a formula against every variant combination",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := loadFormula(args[0])
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	m := f.Matrix()
	for _, a := range m.Combinations() {
		if _, err := f.Resolve(a); err != nil {
			return fmt.Errorf("%s%s: %w", f.Name, a, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d combinations)\n", f.Name, m.CombinationCount())
	return nil
}
