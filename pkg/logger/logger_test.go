package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Astemirdum/reviews-service/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_SplitSinks(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	log := logger.New(zapcore.InfoLevel, "reviews", zapcore.AddSync(&out), zapcore.AddSync(&errOut)).
		Named("ratings")

	log.Debug("hidden")
	log.Info("calling", zap.String("uri", "http://ratings:9080/ratings/0"))
	log.Warn("ratings disabled")
	log.Error("unable to contact")

	infoLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, infoLines, 2)
	errLines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, errLines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(infoLines[0]), &rec))
	require.Equal(t, "INFO", rec["level"])
	require.Equal(t, "reviews", rec["service"])
	require.Equal(t, "ratings", rec["component"])
	require.Equal(t, "calling", rec["msg"])
	require.Contains(t, rec, "timestamp")

	require.NoError(t, json.Unmarshal([]byte(errLines[0]), &rec))
	require.Equal(t, "ERROR", rec["level"])
	require.Equal(t, "unable to contact", rec["msg"])
}

func TestNew_LevelFilter(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	log := logger.New(zapcore.ErrorLevel, "reviews", zapcore.AddSync(&out), zapcore.AddSync(&errOut))

	log.Info("dropped")
	log.Warn("dropped")
	log.Error("kept")

	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), `"msg":"kept"`)
}
