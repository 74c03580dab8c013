package bbolt

import (
	"bytes"

	"go.etcd.io/bbolt"

	"github.com/mklane/sqleval/engine/kv"
)

var (
	bucketName = []byte("variables")
)

type Engine struct{}

type database struct {
	db *bbolt.DB
}

type readTx struct {
	tx *bbolt.Tx
}

type writeTx struct {
	readTx
}

type iterator struct {
	cursor *bbolt.Cursor
	prefix []byte
	key    []byte
	val    []byte
}

func (Engine) Open(path string) (kv.DB, error) {
	db, err := bbolt.Open(path, 0644, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return database{db}, nil
}

func (db database) ReadTx() (kv.ReadTx, error) {
	tx, err := db.db.Begin(false)
	if err != nil {
		return nil, err
	}
	return readTx{tx}, nil
}

func (db database) WriteTx() (kv.WriteTx, error) {
	tx, err := db.db.Begin(true)
	if err != nil {
		return nil, err
	}
	return writeTx{readTx{tx}}, nil
}

func (db database) Close() error {
	return db.db.Close()
}

func (rtx readTx) Discard() {
	rtx.tx.Rollback()
}

func (rtx readTx) Get(key []byte, vf func(val []byte) error) error {
	val := rtx.tx.Bucket(bucketName).Get(key)
	if val == nil {
		return kv.ErrKeyNotFound
	}
	return vf(val)
}

func (rtx readTx) Iterate(prefix []byte) kv.Iterator {
	return &iterator{
		cursor: rtx.tx.Bucket(bucketName).Cursor(),
		prefix: prefix,
	}
}

func (wtx writeTx) Commit() error {
	return wtx.tx.Commit()
}

func (wtx writeTx) Delete(key []byte) error {
	return wtx.tx.Bucket(bucketName).Delete(key)
}

func (wtx writeTx) Set(key []byte, val []byte) error {
	return wtx.tx.Bucket(bucketName).Put(key, val)
}

func (it *iterator) Close() {
	// Nothing.
}

func (it *iterator) Key() []byte {
	return it.key
}

func (it *iterator) Next() {
	it.key, it.val = it.cursor.Next()
}

func (it *iterator) Rewind() {
	it.key, it.val = it.cursor.Seek(it.prefix)
}

func (it *iterator) Valid() bool {
	return it.key != nil && bytes.HasPrefix(it.key, it.prefix)
}

func (it *iterator) Value(vf func(val []byte) error) error {
	return vf(it.val)
}
