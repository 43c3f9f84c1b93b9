package cmd

import (
	"fmt"

	"famtree/kin/internal/lineage"
	"github.com/spf13/cobra"
)

var parentsCmd = &cobra.Command{
	Use:   "parents <parent1-id> <parent2-id>",
	Short: "Resolve a parent id pair to display names",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ids [2]int
		for i, arg := range args {
			id, err := ParseID(arg)
			if err != nil {
				return err
			}
			ids[i] = id
		}

		c, err := LoadFamily()
		if err != nil {
			return err
		}

		names := lineage.ResolveParentNames(ids, c.People())
		fmt.Printf("Parent 1: %s\nParent 2: %s\n", names[0], names[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parentsCmd)
}
