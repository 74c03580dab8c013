package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mklane/sqleval/evaluate"
	"github.com/mklane/sqleval/parser"
	"github.com/mklane/sqleval/sql"
)

var (
	evalCmd = &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate expressions and print their values",
		Args:  cobra.MinimumNArgs(1),
		RunE:  evalRun,
	}
)

func init() {
	initSessionFlags(evalCmd.Flags())

	sqlevalCmd.AddCommand(evalCmd)
}

func evalRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	ses := newSession(e)

	for _, arg := range args {
		p := parser.NewParser(strings.NewReader(arg), "eval")
		ex, err := p.ParseExpr()
		if err != nil {
			return err
		}

		result, err := ses.Run(&evaluate.Eval{Expr: ex})
		if err != nil {
			return err
		}
		fmt.Println(sql.Format(result.Rows[0][0]))
	}
	return nil
}
