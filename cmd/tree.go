package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"famtree/kin/internal/lineage"
	"github.com/spf13/cobra"
)

var (
	treeJSON      bool
	treeMaxDepth  int
	treeBandRange int
	treeUnique    bool
	treeFlat      bool
)

var treeCmd = &cobra.Command{
	Use:   "tree <id>",
	Short: "Show ancestors and descendants of a person grouped by generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootID, err := ParseID(args[0])
		if err != nil {
			return err
		}

		c, err := LoadFamily()
		if err != nil {
			return err
		}

		opts := treeOptions(cmd)
		snap := lineage.NewSnapshot(c.People())
		resolver := lineage.NewResolver(snap, lineage.Options{MaxDepth: opts.maxDepth})

		fam := resolver.Family(rootID)
		if !fam.Found() {
			return fmt.Errorf("person not found: %d", rootID)
		}
		logf("resolved %d member(s) for #%d (max depth %d)", len(fam.Members), rootID, opts.maxDepth)
		if opts.unique {
			fam = fam.Unique()
		}

		if opts.json {
			output := struct {
				RootID  int              `json:"root_id"`
				Members []lineage.Member `json:"members,omitempty"`
				Bands   []lineage.Band   `json:"bands,omitempty"`
				Hidden  int              `json:"hidden"`
			}{
				RootID: rootID,
				Hidden: fam.Hidden(opts.bandRange),
			}
			if treeFlat {
				output.Members = fam.Members
			} else {
				output.Bands = fam.Bands(opts.bandRange)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(output)
		}

		if treeFlat {
			printFlat(os.Stdout, resolver, fam)
			return nil
		}
		printBands(os.Stdout, resolver, fam, opts.bandRange)
		return nil
	},
}

type resolvedTreeOptions struct {
	maxDepth  int
	bandRange int
	unique    bool
	json      bool
}

// treeOptions merges config file values with explicitly set flags
func treeOptions(cmd *cobra.Command) resolvedTreeOptions {
	opts := resolvedTreeOptions{
		maxDepth:  cfg.Lineage.MaxDepth,
		bandRange: cfg.Lineage.BandRange,
		unique:    cfg.Lineage.Unique,
		json:      cfg.Output.JSON,
	}
	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		opts.maxDepth = treeMaxDepth
	}
	if flags.Changed("bands") {
		opts.bandRange = treeBandRange
	}
	if flags.Changed("unique") {
		opts.unique = treeUnique
	}
	if flags.Changed("json") {
		opts.json = treeJSON
	}
	return opts
}

func init() {
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "Output as JSON")
	treeCmd.Flags().IntVar(&treeMaxDepth, "max-depth", lineage.DefaultMaxDepth, "Generation at which traversal stops in each direction")
	treeCmd.Flags().IntVar(&treeBandRange, "bands", lineage.DefaultBandRange, "Widest generation shown in the grouped view")
	treeCmd.Flags().BoolVar(&treeUnique, "unique", false, "List each person once even if reachable by several paths")
	treeCmd.Flags().BoolVar(&treeFlat, "flat", false, "Print the ungrouped traversal order")
	rootCmd.AddCommand(treeCmd)
}

func printBands(w io.Writer, r *lineage.Resolver, fam lineage.Family, bandRange int) {
	root, ok := fam.Root()
	if !ok {
		fmt.Fprintln(w, "No family found.")
		return
	}
	if bandRange < 0 {
		bandRange = 0
	}

	fmt.Fprintf(w, "\n  Lineage of %s (#%d)\n", truncName(root.Name, 50), root.ID)
	fmt.Fprintln(w, "  ────────────────────────────────────────")

	for _, band := range fam.Bands(bandRange) {
		if len(band.Members) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s (%+d)\n", band.Label, band.Generation)
		for _, m := range band.Members {
			fmt.Fprintf(w, "    %s\n", memberLine(r, m))
		}
	}

	if hidden := fam.Hidden(bandRange); hidden > 0 {
		s := ""
		if hidden != 1 {
			s = "s"
		}
		fmt.Fprintf(w, "\n  %d member%s beyond ±%d generations not shown\n", hidden, s, bandRange)
	}
	fmt.Fprintln(w)
}

func printFlat(w io.Writer, r *lineage.Resolver, fam lineage.Family) {
	for i, m := range fam.Members {
		fmt.Fprintf(w, "  %3d. [%+d] %s\n", i+1, m.Generation, memberLine(r, m))
	}
}

func memberLine(r *lineage.Resolver, m lineage.Member) string {
	names := r.ParentNames(m.Parents)
	return fmt.Sprintf("#%-4d %s  (parents: %s)",
		m.ID, truncName(m.Name, 40), strings.Join(names[:], ", "))
}
