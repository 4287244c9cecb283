package cmd

import (
	"fmt"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog tables and their entries",
	Long: `Print the built-in tables with entries grouped by category. With --catalog,
only the skill table behind that selector is shown.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	names := catalog.TableNames()
	if name, _ := cmd.Flags().GetString("catalog"); name != "" {
		sel, err := catalog.ParseSelector(name)
		if err != nil {
			return err
		}
		names = []string{sel.SkillTable()}
	}

	out := engine.DescribeCatalogs(names, true)

	if format, _ := cmd.Flags().GetString("format"); format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	w := cmd.OutOrStdout()
	for _, t := range out.Tables {
		fmt.Fprintf(w, "%s v%d: %s entries\n", t.Name, t.Version, humanize.Comma(int64(t.Entries)))
		for _, c := range t.Categories {
			fmt.Fprintf(w, "  %s (%d): %v\n", c.Name, c.Count, c.Entries)
		}
	}
	for _, s := range out.Skipped {
		fmt.Fprintf(w, "skipped %s/%s %q: %s\n", s.Table, s.Entry, s.Source, s.Reason)
	}
	return nil
}
