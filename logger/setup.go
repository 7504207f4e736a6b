package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient wraps a zap.Logger and implements Logger.
type LoggerClient struct {
	// Zap is the underlying logger, exposed for zap-specific needs.
	Zap *zap.Logger

	tracingEnabled bool
}

// NewLoggerClient builds a JSON logger writing to stderr.
//
// Parameters:
//   - cfg: level, service name, caller skip and tracing options
//
// Returns:
//   - *LoggerClient: ready to use, or the process exits via log.Fatal if zap
//     rejects the configuration
//
// Entries carry ISO8601 timestamps, capitalized levels, the full caller path
// and the "pid" and "service" fields.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Debug,
//	    ServiceName:   "ingest",
//	    EnableTracing: true,
//	})
//	inst := instrument.New(log, tracer.NewGlobal(), nil)
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:            zl,
		tracingEnabled: cfg.EnableTracing,
	}
}

// NewNop returns a logger that discards everything. Channels created without
// an explicit logger use it.
func NewNop() *LoggerClient {
	return &LoggerClient{Zap: zap.NewNop()}
}

// NewFromZap wraps an existing zap logger, e.g. one built by zaptest.
func NewFromZap(zl *zap.Logger, tracingEnabled bool) *LoggerClient {
	return &LoggerClient{Zap: zl, tracingEnabled: tracingEnabled}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
