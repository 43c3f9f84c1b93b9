package cmd

import (
	"os"

	"famtree/kin/internal/family"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the family document as normalized JSON",
	Long: "Print the family document as normalized JSON ({id, name, parents}).\n" +
		"Legacy mother/father keys and string ids are converted; records\n" +
		"without an id get the next sequential one.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadFamily()
		if err != nil {
			return err
		}
		return family.Encode(os.Stdout, c.People())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
