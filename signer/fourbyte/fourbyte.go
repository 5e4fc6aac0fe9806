// Copyright 2019 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.
// Package fourbyte contains the 4byte database.
package fourbyte

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gofrs/flock"
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/log"
)

//go:embed 4byte.json
var embeddedJSON []byte

// ErrUnknownSelector is returned when a selector is in neither set.
var ErrUnknownSelector = errors.New("signature not found")

// Database is a 4byte database with the possibility of maintaining an immutable
// set (embedded) into the process and a mutable set (loaded and written to file).
//
// Database 是一个 4byte 数据库，可以维护一个嵌入进程的不可变集合（embedded）
// 和一个可变集合（加载并写入文件）。
type Database struct {
	embedded   map[string]string // selector hex -> signature, read only
	custom     map[string]string // selector hex -> signature, persisted to customPath
	customPath string

	lock sync.RWMutex
}

func newEmpty() *Database {
	return &Database{
		embedded: make(map[string]string),
		custom:   make(map[string]string),
	}
}

// New loads the standard signature database embedded in the package.
func New() (*Database, error) {
	return NewWithFile("")
}

// NewFromFile loads a signature database from file. The file replaces the
// embedded set and no custom set is maintained.
func NewFromFile(path string) (*Database, error) {
	raw, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	db := newEmpty()
	if err := json.NewDecoder(raw).Decode(&db.embedded); err != nil {
		return nil, err
	}
	return db, nil
}

// NewWithFile loads both the standard signature database (embedded resource
// file) as well as a custom database. The latter will be used to write new
// values into if they are submitted via the API.
func NewWithFile(path string) (*Database, error) {
	db := newEmpty()
	if err := json.Unmarshal(embeddedJSON, &db.embedded); err != nil {
		return nil, err
	}
	if err := db.loadCustom(path); err != nil {
		return nil, err
	}
	return db, nil
}

// NewCustomOnly loads only the custom database at path, skipping the
// embedded set.
func NewCustomOnly(path string) (*Database, error) {
	db := newEmpty()
	if err := db.loadCustom(path); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *Database) loadCustom(path string) error {
	db.customPath = path
	if path == "" {
		return nil
	}
	custom, err := readCustom(path)
	if err != nil {
		return err
	}
	db.custom = custom
	log.Debug("Loaded custom 4byte database", "path", path, "entries", len(custom))
	return nil
}

// readCustom reads a custom database file. A missing file is an empty set.
func readCustom(path string) (map[string]string, error) {
	custom := make(map[string]string)
	blob, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return custom, nil
	}
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return custom, nil
	}
	if err := json.Unmarshal(blob, &custom); err != nil {
		return nil, fmt.Errorf("invalid 4byte database %s: %w", path, err)
	}
	return custom, nil
}

// Size returns the number of 4byte entries in the embedded and custom datasets.
func (db *Database) Size() (int, int) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return len(db.embedded), len(db.custom)
}

// Selectors returns every known selector, in hex without prefix.
func (db *Database) Selectors() mapset.Set[string] {
	db.lock.RLock()
	defer db.lock.RUnlock()

	set := mapset.NewThreadUnsafeSetWithSize[string](len(db.embedded) + len(db.custom))
	for id := range db.embedded {
		set.Add(id)
	}
	for id := range db.custom {
		set.Add(id)
	}
	return set
}

// Selector checks the given 4byte ID against the known ABI methods.
//
// This method does not validate the match, it's assumed the caller will do.
func (db *Database) Selector(id []byte) (string, error) {
	if len(id) < 4 {
		return "", fmt.Errorf("expected 4-byte id, got %d", len(id))
	}
	sig := hex.EncodeToString(id[:4])

	db.lock.RLock()
	defer db.lock.RUnlock()

	if selector, exists := db.embedded[sig]; exists {
		return selector, nil
	}
	if selector, exists := db.custom[sig]; exists {
		return selector, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownSelector, sig)
}

// AddSelector inserts a new 4byte entry into the database. The signature is
// parsed and its selector computed, so only well formed entries are stored.
// If the custom database has a backing file, the entry is merged into it
// under a file lock.
func (db *Database) AddSelector(signature string) (string, error) {
	method, err := abi.ParseMethodCached(signature)
	if err != nil {
		return "", err
	}
	id := hex.EncodeToString(method.ID)
	if _, err := db.Selector(method.ID); err == nil {
		return id, nil
	}
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.customPath == "" {
		db.custom[id] = method.Sig
		return id, nil
	}
	if err := db.persist(id, method.Sig); err != nil {
		return "", err
	}
	return id, nil
}

// persist merges one entry into the custom file. Other processes may update
// the same file, so it is re-read under the lock before writing. The
// in-memory table only picks up the merged view once the file is replaced.
func (db *Database) persist(id, sig string) error {
	if err := os.MkdirAll(filepath.Dir(db.customPath), 0700); err != nil {
		return err
	}
	fileLock := flock.New(db.customPath + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("failed to lock 4byte database: %w", err)
	}
	defer fileLock.Unlock()

	onDisk, err := readCustom(db.customPath)
	if err != nil {
		return err
	}
	onDisk[id] = sig
	blob, err := json.MarshalIndent(onDisk, "", "  ")
	if err != nil {
		return err
	}
	tmp := db.customPath + ".tmp"
	if err := os.WriteFile(tmp, blob, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, db.customPath); err != nil {
		os.Remove(tmp)
		return err
	}
	for k, v := range onDisk {
		db.custom[k] = v
	}
	log.Debug("Stored 4byte selector", "id", id, "sig", sig, "path", db.customPath)
	return nil
}
