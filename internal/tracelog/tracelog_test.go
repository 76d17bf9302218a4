package tracelog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/lestrrat-go/xmlom/internal/tracelog"
	"github.com/stretchr/testify/require"
)

func TestWithTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := tracelog.WithTraceLogger(context.Background(), logger)
	tracelog.FromContext(ctx).Debug("test message")
	require.Contains(t, buf.String(), "test message")
	require.Contains(t, buf.String(), `"fn"`)

	t.Run("first logger wins", func(t *testing.T) {
		var other bytes.Buffer
		ctx := tracelog.WithTraceLogger(ctx, slog.New(slog.NewJSONHandler(&other, nil)))
		tracelog.FromContext(ctx).Info("again")
		require.Empty(t, other.String())
	})
}

func TestTraceEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := tracelog.WithTraceLogger(context.Background(), logger)

	tracelog.TraceEvent(ctx, "writing document",
		slog.String("destination", "out.xml"),
		slog.Int("size", 1024),
	)
	output := buf.String()
	require.Contains(t, output, "writing document")
	require.Contains(t, output, "out.xml")
	require.Contains(t, output, "1024")

	buf.Reset()
	tracelog.TraceError(ctx, errors.New("disk full"), "write failed", slog.String("component", "sink"))
	output = buf.String()
	require.Contains(t, output, "write failed")
	require.Contains(t, output, "disk full")
	require.Contains(t, output, "ERROR")
}

func TestNullLogger(t *testing.T) {
	ctx := context.Background()
	tlog := tracelog.FromContext(ctx)
	require.NotNil(t, tlog)
	require.NotPanics(t, func() {
		tlog.Debug("this should not output anything")
		tracelog.TraceEvent(ctx, "test event")
		tracelog.TraceError(ctx, errors.New("test"), "test error")
	})
}
