// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/lazy"
)

type traceLine struct {
	Level   string `json:"level"`
	Seq     string `json:"seq"`
	Index   *int   `json:"index"`
	Count   *int   `json:"count"`
	Head    any    `json:"head"`
	Message string `json:"message"`
}

func readTrace(t *testing.T, buf *bytes.Buffer) []traceLine {
	t.Helper()
	var lines []traceLine
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var l traceLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		lines = append(lines, l)
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestTraceLogsEachRealizedCellOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := lazy.Trace(lazy.Count(1), &logger, "naturals")
	s.Take(3).ToSlice()
	s.Take(3).ToSlice()

	lines := readTrace(t, &buf)
	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, "debug", l.Level)
		assert.Equal(t, "naturals", l.Seq)
		assert.Equal(t, "realized", l.Message)
		require.NotNil(t, l.Index)
		assert.Equal(t, i, *l.Index)
		assert.EqualValues(t, i+1, l.Head)
	}
}

func TestTraceShowsEvaluationOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	src := lazy.Trace(lazy.Range(1, 4), &logger, "src")
	out := lazy.Trace(lazy.Map(src, func(v int) int { return v * 10 }), &logger, "out")
	assert.Equal(t, []int{10, 20, 30}, out.ToSlice())

	var order []string
	for _, l := range readTrace(t, &buf) {
		order = append(order, l.Seq+":"+l.Message)
	}
	assert.Equal(t, []string{
		"src:realized", "out:realized",
		"src:realized", "out:realized",
		"src:realized", "out:realized",
		"src:exhausted", "out:exhausted",
	}, order)
}

func TestTraceDisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	assert.Equal(t, []int{1, 2}, lazy.Trace(lazy.With(1, 2), &logger, "quiet").ToSlice())
	assert.Zero(t, buf.Len())
}
