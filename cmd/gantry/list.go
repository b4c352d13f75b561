package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available policies",
	Long: `List every policy known to gantry with its identifier, severity and a
one-line summary. Use "gantry show POLICY" for the full description.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEVERITY\tDESCRIPTION")
	for _, desc := range reg.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", desc.ID, desc.Severity, desc.Short)
	}
	return w.Flush()
}
