package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show POLICY",
	Short: "Show the full documentation for a policy",
	Long: `Show the full documentation for a single policy: what it detects, why
it matters and how to fix a finding.

Example:
  gantry show permissions_set`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	id := args[0]
	desc, ok := reg.Find(id)
	if !ok {
		ids := make([]string, 0, reg.Len())
		for _, d := range reg.All() {
			ids = append(ids, d.ID)
		}
		return fmt.Errorf("unknown policy %q (known policies: %s)", id, strings.Join(ids, ", "))
	}

	fmt.Printf("%s (severity: %s)\n\n", desc.ID, desc.Severity)
	fmt.Println(strings.TrimSpace(desc.Long))
	return nil
}
