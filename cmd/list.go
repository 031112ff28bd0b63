package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"standex/pkg/catalog"
)

var (
	listKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	listDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	listNameStyle = lipgloss.NewStyle().Bold(true)
)

// listCmd prints the catalog: every fetchable standard with its key, summary,
// and remote source files.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available standards",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, e := range catalog.Entries() {
			fmt.Fprintf(out, "%s  %s\n",
				listKeyStyle.Render(e.Key),
				listNameStyle.Render(e.DisplayName))
			fmt.Fprintf(out, "    %s\n", e.Description)
			fmt.Fprintf(out, "    %s\n",
				listDimStyle.Render("sources: "+strings.Join(e.SourcePaths, ", ")+" → "+e.OutputName))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
