package formatter

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "  0%"},
		{"half", 0.5, " 50%"},
		{"full", 1, "100%"},
		{"over 100% clamps", 1.5, "100%"},
		{"negative clamps", -0.2, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.True(t, strings.HasPrefix(got, "["))
			assert.True(t, strings.HasSuffix(got, tt.want), got)
		})
	}
}

func TestBarBlocks(t *testing.T) {
	assert.Equal(t, strings.Repeat(emptyBlock, 4), bar(0, 4))
	assert.Equal(t, strings.Repeat(filledBlock, 4), bar(1, 4))
	assert.Equal(t, filledBlock+filledBlock+emptyBlock+emptyBlock, bar(0.5, 4))
	assert.Len(t, []rune(bar(0.5, 1)), 2, "width clamps to 2")
}

func TestRenderMeter(t *testing.T) {
	out := RenderMeter("Risk", 60, 10, StyleRed)
	assert.True(t, strings.HasPrefix(out, "Risk    "))
	assert.True(t, strings.HasSuffix(out, " 60%"))
	assert.Contains(t, out, strings.Repeat(filledBlock, 6))
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestSpinnerWritesAndClears(t *testing.T) {
	var buf syncBuffer
	stop := StartSpinner(&buf, "Reading the stars")
	time.Sleep(200 * time.Millisecond)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "Reading the stars")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}
