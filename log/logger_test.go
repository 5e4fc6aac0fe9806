// Copyright 2023 The go-ethereum Authors
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
package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTimeTermFormat(t *testing.T) {
	b := new(bytes.Buffer)
	writeTimeTermFormat(b, time.Date(2024, time.March, 5, 7, 8, 9, 12e6, time.UTC))
	assert.Equal(t, "03-05|07:08:09.012", b.String())
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	lvl := new(slog.LevelVar)
	lvl.Set(LevelInfo)
	l := NewLogger(NewTerminalHandlerWithLevel(out, lvl, false))

	l.Debug("hidden")
	assert.Empty(t, out.String())

	l.Info("decoded", "method", "transfer")
	assert.Contains(t, out.String(), "INFO ")
	assert.Contains(t, out.String(), "method=transfer")

	out.Reset()
	lvl.Set(LevelTrace)
	l.Trace("visible")
	assert.Contains(t, out.String(), "TRACE")
}

func TestTerminalHandlerWithAttrs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false)).With("selector", "a9059cbb")
	l.Info("lookup")
	assert.True(t, strings.HasSuffix(out.String(), "selector=a9059cbb\n"), out.String())
}

func TestJSONHandlerReplace(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandler(out))
	l.Info("packed", "value", big.NewInt(1000000), "data", []byte{0xa9, 0x05}, "u", uint256.NewInt(7))

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "info", rec["lvl"])
	assert.Equal(t, "1000000", rec["value"])
	assert.Equal(t, "0xa905", rec["data"])
	assert.Equal(t, "7", rec["u"])
}

func TestLogfmtOddArguments(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandler(out))
	l.Info("odd", "key")
	assert.Contains(t, out.String(), errorKey)
}

func TestFormatSlogValue(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{big.NewInt(-123456789), "-123,456,789"},
		{uint256.NewInt(1234567), "1,234,567"},
		{[]byte{1, 2, 3}, "0x010203"},
		{"needs quoting", "\"needs quoting\""},
		{(*big.Int)(nil), "<nil>"},
	}
	for _, test := range tests {
		have := string(FormatSlogValue(slog.AnyValue(test.v), nil))
		assert.Equal(t, test.want, have, "value %v", test.v)
	}
	long := string(FormatSlogValue(slog.AnyValue(make([]byte, 100)), nil))
	assert.Contains(t, long, "..")
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
}
