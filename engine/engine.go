package engine

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/mklane/sqleval/engine/encode"
	"github.com/mklane/sqleval/engine/kv"
	"github.com/mklane/sqleval/sql"
)

// Engine persists session variables in a key-value store. Each variable is one
// key; the name is the key and the encoded value is the value.
type Engine struct {
	db     kv.DB
	logger *log.Logger
}

type Variable struct {
	Name  sql.Identifier
	Value sql.Value
}

var (
	varPrefix = []byte("var/")
)

func varKey(nam sql.Identifier) []byte {
	return append(append([]byte(nil), varPrefix...), nam.String()...)
}

func Open(eng kv.Engine, path string, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}

	db, err := eng.Open(path)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{"path": path}).Debug("opened variable store")
	return &Engine{
		db:     db,
		logger: logger,
	}, nil
}

func (e *Engine) Close() error {
	return e.db.Close()
}

func (e *Engine) Get(nam sql.Identifier) (sql.Value, bool, error) {
	rtx, err := e.db.ReadTx()
	if err != nil {
		return nil, false, err
	}
	defer rtx.Discard()

	var val sql.Value
	err = rtx.Get(varKey(nam), func(b []byte) error {
		var ok bool
		val, ok = encode.DecodeValue(b)
		if !ok {
			return fmt.Errorf("engine: corrupt value for variable %s", nam)
		}
		return nil
	})
	if err == kv.ErrKeyNotFound {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (e *Engine) Set(nam sql.Identifier, val sql.Value) error {
	wtx, err := e.db.WriteTx()
	if err != nil {
		return err
	}
	defer wtx.Discard()

	err = wtx.Set(varKey(nam), encode.EncodeValue(val))
	if err != nil {
		return err
	}
	err = wtx.Commit()
	if err != nil {
		return err
	}

	e.logger.WithFields(log.Fields{
		"variable": nam.String(),
		"value":    sql.Format(val),
	}).Debug("set variable")
	return nil
}

func (e *Engine) Drop(nam sql.Identifier) error {
	_, ok, err := e.Get(nam)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("engine: %s not found", nam)
	}

	wtx, err := e.db.WriteTx()
	if err != nil {
		return err
	}
	defer wtx.Discard()

	err = wtx.Delete(varKey(nam))
	if err != nil {
		return err
	}
	err = wtx.Commit()
	if err != nil {
		return err
	}

	e.logger.WithFields(log.Fields{"variable": nam.String()}).Debug("dropped variable")
	return nil
}

// Variables returns every stored variable sorted by name.
func (e *Engine) Variables() ([]Variable, error) {
	rtx, err := e.db.ReadTx()
	if err != nil {
		return nil, err
	}
	defer rtx.Discard()

	var vars []Variable
	it := rtx.Iterate(varPrefix)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		nam := sql.QuotedID(string(it.Key()[len(varPrefix):]))

		var val sql.Value
		err = it.Value(func(b []byte) error {
			var ok bool
			val, ok = encode.DecodeValue(b)
			if !ok {
				return fmt.Errorf("engine: corrupt value for variable %s", nam)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		vars = append(vars, Variable{Name: nam, Value: val})
	}

	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name.String() < vars[j].Name.String()
	})
	return vars, nil
}
