// Package logger is the structured log sink for channel trace events.
//
// It wraps go.uber.org/zap behind a small Logger interface. Channel scopes
// (see package instrument) write one debug entry per send or receive through
// DebugWithContext, carrying the channel's "uuid" and "scope" fields and,
// when tracing is enabled, the "trace_id" and "span_id" of the scope span.
//
// # Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Debug,
//	    ServiceName:   "ingest",
//	    EnableTracing: true,
//	})
//	log.Info("worker started", nil, map[string]interface{}{"workers": 4})
//
// A sample channel event (one line, wrapped here):
//
//	{"level":"DEBUG","timestamp":"...","caller":"...","msg":"Sending value",
//	 "pid":4242,"service":"ingest","scope":"mpsc-tx",
//	 "uuid":"q83vEjRWeJCrze8SNFZ4kA","trace_id":"...","span_id":"..."}
//
// # FX
//
// FXModule provides *LoggerClient and Logger from a logger.Config.
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package logger
