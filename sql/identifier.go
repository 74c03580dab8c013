package sql

import (
	"strings"
)

// Identifier is an interned name: variable names and keywords. Reserved
// keywords have negative identifiers.
type Identifier int

const MaxIdentifier = 128

const (
	AND Identifier = -(iota + 1)
	DROP
	FALSE
	NOT
	NULL
	OR
	SET
	SHOW
	TRUE
	VARIABLES
)

var keywords = map[string]Identifier{
	"AND":       AND,
	"DROP":      DROP,
	"FALSE":     FALSE,
	"NOT":       NOT,
	"NULL":      NULL,
	"OR":        OR,
	"SET":       SET,
	"SHOW":      SHOW,
	"TRUE":      TRUE,
	"VARIABLES": VARIABLES,
}

var (
	lastIdentifier Identifier
	identifiers    = map[string]Identifier{}
	names          = map[Identifier]string{}
)

func intern(s string) Identifier {
	if id, found := identifiers[s]; found {
		return id
	}
	lastIdentifier += 1
	identifiers[s] = lastIdentifier
	names[lastIdentifier] = s
	return lastIdentifier
}

// UnquotedID folds the name to lower case and maps keywords; QuotedID interns
// the name exactly as written.
func UnquotedID(s string) Identifier {
	if len(s) > MaxIdentifier {
		s = s[:MaxIdentifier]
	}
	if id, found := keywords[strings.ToUpper(s)]; found {
		return id
	}
	return intern(strings.ToLower(s))
}

func QuotedID(s string) Identifier {
	if len(s) > MaxIdentifier {
		s = s[:MaxIdentifier]
	}
	return intern(s)
}

// ID is for names known to be plain lower case identifiers.
func ID(s string) Identifier {
	return UnquotedID(s)
}

func (id Identifier) String() string {
	return names[id]
}

func (id Identifier) IsReserved() bool {
	return id < 0
}

func init() {
	for s, id := range keywords {
		names[id] = s
	}
}
