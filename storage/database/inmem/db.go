package inmemdb

import "sync"

type DB struct {
	kv *kvTable
}

type kvTable struct {
	sync.RWMutex
	table map[string]string
}

// Open returns an empty in-memory database. Nothing survives the process.
func Open() (*DB, error) {
	db := &DB{
		kv: &kvTable{table: make(map[string]string)},
	}
	return db, nil
}
