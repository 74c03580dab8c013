package evaluate

import (
	"fmt"

	"github.com/mklane/sqleval/engine"
	"github.com/mklane/sqleval/sql"
)

// Session evaluates statements against a variable store. With caching enabled
// the variables are kept in memory and written through to the store; without
// it they are reloaded from the store before every statement, so concurrent
// sessions against the same store see each other's writes.
type Session struct {
	e         *engine.Engine
	sesid     uint64
	cacheVars bool
	vars      map[sql.Identifier]sql.Value
}

func NewSession(e *engine.Engine, cacheVars bool) *Session {
	return &Session{
		e:         e,
		cacheVars: cacheVars,
	}
}

func (ses *Session) SetSessionID(sesid uint64) {
	ses.sesid = sesid
}

func (ses *Session) String() string {
	return fmt.Sprintf("session-%d", ses.sesid)
}

func (ses *Session) loadVariables() error {
	vars, err := ses.e.Variables()
	if err != nil {
		return err
	}

	ses.vars = make(map[sql.Identifier]sql.Value, len(vars))
	for _, v := range vars {
		ses.vars[v.Name] = v.Value
	}
	return nil
}

// Run executes one statement; every evaluation happens through here so that
// the variables the statement sees are a consistent snapshot.
func (ses *Session) Run(stmt Stmt) (*Result, error) {
	if ses.vars == nil || !ses.cacheVars {
		err := ses.loadVariables()
		if err != nil {
			return nil, err
		}
	}
	return stmt.Execute(ses)
}

// Variable implements expr.EvalContext over the statement's snapshot.
func (ses *Session) Variable(nam sql.Identifier) (sql.Value, bool) {
	val, ok := ses.vars[nam]
	return val, ok
}

func (ses *Session) SetVariable(nam sql.Identifier, val sql.Value) error {
	if nam.IsReserved() {
		return fmt.Errorf("engine: %s is a reserved identifier", nam)
	}

	err := ses.e.Set(nam, val)
	if err != nil {
		return err
	}
	if ses.vars != nil {
		ses.vars[nam] = val
	}
	return nil
}

func (ses *Session) DropVariable(nam sql.Identifier) error {
	err := ses.e.Drop(nam)
	if err != nil {
		return err
	}
	delete(ses.vars, nam)
	return nil
}

func (ses *Session) Variables() ([]engine.Variable, error) {
	return ses.e.Variables()
}
