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

var listJSON bool

// listedPerson is a person with parent refs resolved to names
type listedPerson struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Parents     [2]int    `json:"parents"`
	ParentNames [2]string `json:"parent_names"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List everyone in the family document with parent names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadFamily()
		if err != nil {
			return err
		}
		people := c.People()
		listed := listPeople(people)

		if listJSON || (cfg.Output.JSON && !cmd.Flags().Changed("json")) {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(listed)
		}
		printList(os.Stdout, listed)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

func listPeople(people []family.Person) []listedPerson {
	r := lineage.NewResolver(lineage.NewSnapshot(people), lineage.DefaultOptions())
	out := make([]listedPerson, 0, len(people))
	for _, p := range people {
		out = append(out, listedPerson{
			ID:          p.ID,
			Name:        p.Name,
			Parents:     p.Parents,
			ParentNames: r.ParentNames(p.Parents),
		})
	}
	return out
}

func printList(w io.Writer, listed []listedPerson) {
	if len(listed) == 0 {
		fmt.Fprintln(w, "No people in family document.")
		return
	}
	for _, p := range listed {
		fmt.Fprintf(w, "  #%-4d %s\n", p.ID, truncName(p.Name, 50))
		fmt.Fprintf(w, "        Parent 1: %s\n", p.ParentNames[0])
		fmt.Fprintf(w, "        Parent 2: %s\n", p.ParentNames[1])
	}
	fmt.Fprintf(w, "\n%d person(s)\n", len(listed))
}
