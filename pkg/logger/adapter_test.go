package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"orderlookup/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*logger.Adapter, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.NewFromZap(zap.New(core)), logs
}

func TestAdapter_LogAttrsCarriesRequestID(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	ctx := log.WithRequestID(context.Background(), "req-1")
	log.LogAttrs(ctx, logger.InfoLevel, "lookup finished",
		logger.String("order_uid", "b563feb7"),
		logger.Int("status", 200),
		logger.Err(errors.New("boom")),
	)

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	require.Equal(t, "lookup finished", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "b563feb7", fields["order_uid"])
	require.EqualValues(t, 200, fields["status"])
	require.Equal(t, "boom", fields["error"])
}

func TestAdapter_LevelFiltering(t *testing.T) {
	log, logs := newObserved(zapcore.WarnLevel)

	log.LogAttrs(context.Background(), logger.InfoLevel, "dropped")
	log.Debugw("dropped too")
	log.Warnw("kept", "key", "value")

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	require.Equal(t, "kept", entries[0].Message)
}

func TestAdapter_WithOddArgs(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.With("component", "engine", "dangling").Infow("hello")

	fields := logs.TakeAll()[0].ContextMap()
	require.Equal(t, "engine", fields["component"])
	require.Equal(t, "<missing>", fields["dangling"])
}

func TestAdapter_GenerateRequestID(t *testing.T) {
	log, _ := newObserved(zapcore.InfoLevel)

	first, second := log.GenerateRequestID(), log.GenerateRequestID()
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)
	require.Empty(t, log.GetRequestID(context.Background()))
}

func TestNewZapLogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	zl, err := logger.NewZapLogger("order-lookup", "local",
		logger.Output(&buf),
		logger.SetLevel(logger.DebugLevel),
	)
	require.NoError(t, err)

	zl.Zap().Debug("hello")
	require.NoError(t, zl.Zap().Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["msg"])
	require.Equal(t, "order-lookup", line["service"])
	require.Equal(t, "debug", line["level"])
}

func TestNewZapLogger_NoOutput(t *testing.T) {
	_, err := logger.NewZapLogger("order-lookup", "local", logger.Output(nil))
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, logger.DebugLevel, logger.ParseLevel("debug"))
	require.Equal(t, logger.ErrorLevel, logger.ParseLevel("error"))
	require.Equal(t, logger.InfoLevel, logger.ParseLevel("nonsense"))
	require.Equal(t, "warn", logger.WarnLevel.String())
}
