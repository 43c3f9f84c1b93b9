package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"famtree/kin/internal/family"
	"famtree/kin/internal/lineage"
	"github.com/spf13/cobra"
)

var (
	clansJSON bool
	clansTopN int
)

var clansCmd = &cobra.Command{
	Use:   "clans",
	Short: "Split the family document into disconnected family groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadFamily()
		if err != nil {
			return err
		}

		report := lineage.ComputeClans(c.People())

		if clansJSON || (cfg.Output.JSON && !cmd.Flags().Changed("json")) {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printClans(os.Stdout, report, c, clansTopN)
		return nil
	},
}

func init() {
	clansCmd.Flags().BoolVar(&clansJSON, "json", false, "Output as JSON")
	clansCmd.Flags().IntVar(&clansTopN, "top-n", 10, "Number of clans to show")
	rootCmd.AddCommand(clansCmd)
}

func printClans(w io.Writer, report *lineage.ClanReport, c *family.Collection, topN int) {
	fmt.Fprintln(w, "\n  CLANS")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	fmt.Fprintf(w, "  People: %d  Clans: %d  Largest: %d\n", report.TotalPeople, report.NumClans, report.LargestClan)
	if report.DanglingRefs > 0 {
		fmt.Fprintf(w, "  Dangling parent refs: %d\n", report.DanglingRefs)
	}
	if len(report.IsolatedIDs) > 0 {
		fmt.Fprintf(w, "  Isolated: %d people with no resolvable relatives\n", len(report.IsolatedIDs))
	}

	limit := topN
	if limit < 0 {
		limit = 0
	}
	if len(report.Clans) < limit {
		limit = len(report.Clans)
	}
	for i, clan := range report.Clans[:limit] {
		if clan.Size < 2 {
			break
		}
		first := "?"
		if p, ok := c.Get(clan.IDs[0]); ok {
			first = truncName(p.Name, 40)
		}
		fmt.Fprintf(w, "    %d. %d people, earliest #%d %s\n", i+1, clan.Size, clan.IDs[0], first)
	}
	if len(report.Clans) > limit {
		fmt.Fprintf(w, "    ... and %d more\n", len(report.Clans)-limit)
	}
	fmt.Fprintln(w)
}
