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
package fourbyte

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/ethabi/common"
)

// Tests that all the selectors contained in the 4byte database are valid.
func TestEmbeddedDatabase(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	embedded, custom := db.Size()
	assert.Equal(t, 14, embedded)
	assert.Equal(t, 0, custom)

	for id, selector := range db.embedded {
		method, err := abiParse(selector)
		if err != nil {
			t.Errorf("Failed to parse selector %s: %v", selector, err)
			continue
		}
		if common.Bytes2Hex(method.ID) != id {
			t.Errorf("Selector mismatch: have %x, want %s (%s)", method.ID, id, selector)
		}
	}
}

func TestSelectorLookup(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	sig, err := db.Selector(common.FromHex("0xa9059cbb"))
	require.NoError(t, err)
	assert.Equal(t, "transfer(address,uint256)", sig)

	_, err = db.Selector(common.FromHex("0xdeadbeef"))
	assert.ErrorIs(t, err, ErrUnknownSelector)

	_, err = db.Selector([]byte{1, 2})
	assert.Error(t, err)
}

// Tests that custom 4byte datasets can be handled too.
func TestCustomDatabase(t *testing.T) {
	// Create a new custom 4byte database with no embedded component
	filename := filepath.Join(t.TempDir(), "4byte_custom.json")

	db, err := NewCustomOnly(filename)
	require.NoError(t, err)
	db.embedded = make(map[string]string)

	// Ensure the database is empty, insert and verify
	calldata := common.Hex2Bytes("a52c101edeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	_, err = db.Selector(calldata)
	require.Error(t, err, "Should not find a match on empty database")

	id, err := db.AddSelector("send(uint256)")
	require.NoError(t, err)
	assert.Equal(t, "a52c101e", id)

	sig, err := db.Selector(calldata)
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", sig)

	// Check that the file as persisted to disk by creating a new instance
	db2, err := NewCustomOnly(filename)
	require.NoError(t, err)
	sig, err = db2.Selector(calldata)
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", sig)
}

func TestAddSelectorRejectsMalformed(t *testing.T) {
	db, err := NewWithFile(filepath.Join(t.TempDir(), "custom.json"))
	require.NoError(t, err)

	_, err = db.AddSelector("send(uint7)")
	assert.Error(t, err)
	_, custom := db.Size()
	assert.Equal(t, 0, custom)

	// Known selectors are not duplicated into the custom set.
	_, err = db.AddSelector("transfer(address,uint256)")
	require.NoError(t, err)
	_, custom = db.Size()
	assert.Equal(t, 0, custom)
}

// Two databases sharing one file must not lose each other's entries.
// Tests that a selector whose write fails is not served from memory.
func TestAddSelectorPersistFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	db, err := NewCustomOnly("")
	require.NoError(t, err)
	db.customPath = filepath.Join(blocker, "4byte.json")

	_, err = db.AddSelector("send(uint256)")
	require.Error(t, err)

	_, err = db.Selector(common.Hex2Bytes("a52c101e"))
	assert.Error(t, err)
	_, custom := db.Size()
	assert.Equal(t, 0, custom)
}

func TestCustomDatabaseShared(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "shared.json")

	a, err := NewCustomOnly(filename)
	require.NoError(t, err)
	b, err := NewCustomOnly(filename)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, sig := range []string{"send(uint256)", "burn(uint256)"} {
		wg.Add(1)
		go func(sig string) {
			defer wg.Done()
			if _, err := a.AddSelector(sig); err != nil {
				t.Error(err)
			}
		}(sig)
	}
	wg.Wait()
	_, err = b.AddSelector("mint(address,uint256)")
	require.NoError(t, err)

	merged, err := NewCustomOnly(filename)
	require.NoError(t, err)
	_, custom := merged.Size()
	assert.Equal(t, 3, custom)
	assert.True(t, merged.Selectors().Contains("a52c101e"))
}

func TestCorruptCustomDatabase(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(filename, []byte("{not json"), 0600))

	_, err := NewWithFile(filename)
	assert.Error(t, err)
}

func TestSelectorsUnion(t *testing.T) {
	db, err := NewWithFile(filepath.Join(t.TempDir(), "custom.json"))
	require.NoError(t, err)
	_, err = db.AddSelector("send(uint256)")
	require.NoError(t, err)

	set := db.Selectors()
	assert.Equal(t, 15, set.Cardinality())
	assert.True(t, set.Contains("a9059cbb"))
	assert.True(t, set.Contains("a52c101e"))
}

func TestNewFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "4byte.json")
	require.NoError(t, os.WriteFile(filename, []byte(`{"a52c101e": "send(uint256)"}`), 0600))

	db, err := NewFromFile(filename)
	require.NoError(t, err)
	embedded, custom := db.Size()
	assert.Equal(t, 1, embedded)
	assert.Equal(t, 0, custom)

	sig, err := db.Selector(common.FromHex("0xa52c101e"))
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", sig)
}
