package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mthorne/vitals/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	for _, slug := range styles.ListThemes() {
		t := styles.GetThemeByName(slug)
		fmt.Printf("%-18s %s\n", slug, t.Name)
	}
}
