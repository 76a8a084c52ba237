package idle

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r11/denonctl/pkg/logger"
)

func TestRunLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	loop := New(20*time.Millisecond, logger.New(&buf, zerolog.DebugLevel))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	n, err := loop.Run(ctx)
	require.NoError(t, err)

	// Lines at roughly 0, 20, 40, 60, 80, 100ms; leave room for scheduler jitter.
	assert.GreaterOrEqual(t, n, 2)
	assert.LessOrEqual(t, n, 7)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, n)
	for _, line := range lines {
		assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{3} DEBUG:\tLoop \.\.\.$`, line)
	}
}

func TestRunLogsBeforeFirstWait(t *testing.T) {
	var buf bytes.Buffer
	loop := New(time.Hour, logger.New(&buf, zerolog.DebugLevel))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	n, err := loop.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "DEBUG:\tLoop ...")
}

func TestRunReturnsPromptlyOnCancel(t *testing.T) {
	loop := New(time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := loop.Run(ctx)
		assert.NoError(t, err)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunAlreadyCancelled(t *testing.T) {
	var buf bytes.Buffer
	loop := New(time.Millisecond, logger.New(&buf, zerolog.DebugLevel))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := loop.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestRunInvalidInterval(t *testing.T) {
	var buf bytes.Buffer
	loop := New(0, logger.New(&buf, zerolog.DebugLevel))

	n, err := loop.Run(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestRunRespectsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	loop := New(5*time.Millisecond, logger.New(&buf, zerolog.InfoLevel))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	n, err := loop.Run(ctx)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Empty(t, buf.String())
}
