package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mklane/sqleval/engine"
	"github.com/mklane/sqleval/engine/badger"
	"github.com/mklane/sqleval/engine/bbolt"
	"github.com/mklane/sqleval/engine/kv"
	"github.com/mklane/sqleval/engine/memkv"
	"github.com/mklane/sqleval/engine/pebble"
	"github.com/mklane/sqleval/evaluate"
	"github.com/mklane/sqleval/flags"
	"github.com/mklane/sqleval/parser"
	"github.com/mklane/sqleval/repl"
)

var (
	replCmd = &cobra.Command{
		Use:   "repl [sql-file...]",
		Short: "Run an interactive console session",
		RunE:  replRun,
	}

	store   = "bbolt"
	dataDir = "testdata"

	sqlArgs = []string{}
)

func initSessionFlags(fs *pflag.FlagSet) {
	fs.StringVar(&store, "store", store,
		"variable store to use: bbolt, badger, pebble, or memkv")
	cfgVars["store"] = fs.Lookup("store")

	fs.StringVar(&dataDir, "data", dataDir, "`directory` containing the variable store")
	cfgVars["data"] = fs.Lookup("data")

	fs.StringSliceVar(&sqlArgs, "sql", sqlArgs, "sql `statement` to execute; multiple allowed")
}

func init() {
	initSessionFlags(replCmd.Flags())

	sqlevalCmd.AddCommand(replCmd)
}

func newEngine() (*engine.Engine, error) {
	var eng kv.Engine
	var path string
	switch store {
	case "bbolt":
		eng = bbolt.Engine{}
		os.MkdirAll(dataDir, 0755)
		path = filepath.Join(dataDir, "sqleval.bbolt")
	case "badger":
		eng = badger.Engine{}
		path = filepath.Join(dataDir, "badger")
	case "pebble":
		eng = pebble.Engine{}
		path = filepath.Join(dataDir, "pebble")
	case "memkv":
		eng = memkv.Engine{}
	default:
		return nil, fmt.Errorf("sqleval: got %s for store; want bbolt, badger, pebble, or memkv",
			store)
	}

	e, err := engine.Open(eng, path, log.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("sqleval: %s", err)
	}
	return e, nil
}

func newSession(e *engine.Engine) *evaluate.Session {
	return evaluate.NewSession(e, flgs.GetFlag(flags.CacheVars))
}

func replRun(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	ses := newSession(e)

	for idx, arg := range sqlArgs {
		repl.ReplSQL(ses, parser.NewParser(strings.NewReader(arg),
			fmt.Sprintf("sql-arg[%d]", idx)), os.Stdout)
	}

	for _, fn := range args {
		f, err := os.Open(fn)
		if err != nil {
			return fmt.Errorf("sqleval: sql file: %s", err)
		}
		repl.ReplSQL(ses, parser.NewParser(bufio.NewReader(f), fn), os.Stdout)
		f.Close()
	}

	if len(args) == 0 && len(sqlArgs) == 0 {
		repl.Interact(ses)
	}
	return nil
}
