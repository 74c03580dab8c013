package repl

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/mklane/sqleval/evaluate"
	"github.com/mklane/sqleval/parser"
	"github.com/mklane/sqleval/sql"
)

// ReplSQL reads statements until EOF and executes them against the session,
// writing results and errors to w. A failed statement does not stop the loop.
func ReplSQL(ses *evaluate.Session, p parser.Parser, w io.Writer) {
	for {
		stmt, err := p.Parse()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		result, err := ses.Run(stmt)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		if result == nil {
			continue
		}

		tw := tablewriter.NewWriter(w)
		tw.SetAutoFormatHeaders(false)

		row := make([]string, len(result.Columns))
		for cdx, col := range result.Columns {
			row[cdx] = col.String()
		}
		tw.SetHeader(row)

		for _, vals := range result.Rows {
			for cdx, v := range vals {
				if s, ok := v.(sql.StringValue); ok {
					row[cdx] = string(s)
				} else {
					row[cdx] = sql.Format(v)
				}
			}
			tw.Append(row)
		}
		tw.Render()
		fmt.Fprintf(w, "(%d rows)\n", len(result.Rows))
	}
}
