package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mklane/sqleval/sql"
)

func init() {
	sqlevalCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number of sqleval",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(sql.Version())
			},
		})
}
