package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel  zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
	Sink      string        `yaml:"sink" envconfig:"LOG_SINK"`
	ErrorSink string        `yaml:"errorSink" envconfig:"LOG_ERROR_SINK"`
}

// NewLogger builds a JSON line logger tagged with the service name.
// Records at error level and above are written to ErrorSink (stderr by default),
// everything else to Sink (stdout by default).
func NewLogger(cfg Log, service string) *zap.Logger {
	out := openSink(cfg.Sink, "stdout", os.Stdout)
	errOut := openSink(cfg.ErrorSink, "stderr", os.Stderr)
	return New(cfg.LogLevel, service, out, errOut)
}

func New(level zapcore.Level, service string, out, errOut zapcore.WriteSyncer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(encoderConfig())

	infoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level && lvl < zapcore.ErrorLevel
	})
	errLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level && lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, out, infoLevel),
		zapcore.NewCore(enc.Clone(), errOut, errLevel),
	)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(errOut)).
		With(zap.String("service", service))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.NameKey = "component"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func openSink(path, fallback string, std *os.File) zapcore.WriteSyncer {
	if path == "" {
		path = fallback
	}
	ws, _, err := zap.Open(path)
	if err != nil {
		return zapcore.Lock(std)
	}
	return ws
}
