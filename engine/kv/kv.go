package kv

import (
	"errors"
)

var (
	ErrKeyNotFound = errors.New("kv: key not found")
)

// Engine opens key-value stores; DB is one open store. Write transactions are
// serialized by the store; read transactions see a consistent snapshot.
type Engine interface {
	Open(path string) (DB, error)
}

type DB interface {
	ReadTx() (ReadTx, error)
	WriteTx() (WriteTx, error)
	Close() error
}

type ReadTx interface {
	Discard()
	Get(key []byte, vf func(val []byte) error) error
	Iterate(prefix []byte) Iterator
}

type WriteTx interface {
	ReadTx
	Commit() error
	Set(key []byte, val []byte) error
	Delete(key []byte) error
}

// Iterator walks the keys with the iterated prefix in order. The slices
// returned by Key and passed to Value are only valid until the next call to
// Next, Rewind, or Close.
type Iterator interface {
	Close()
	Key() []byte
	Next()
	Rewind()
	Valid() bool
	Value(vf func(val []byte) error) error
}
