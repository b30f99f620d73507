// Package logger provides structured logging functionality for Go applications.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing
// integration, and JSON output formatting. It integrates with the fx
// dependency injection framework for easy incorporation into applications.
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "embedctl",
//	})
//
//	// Log with structured fields (without context)
//	log.Info("Batch embedded", nil, map[string]interface{}{
//		"batch_size": 32,
//		"dimensions": 384,
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id
//	// when EnableTracing is set)
//	log.InfoWithContext(ctx, "Processing request", nil, nil)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return cfg }),
//		// ... other modules
//	)
//
// # Tracing Integration
//
// When tracing is enabled (EnableTracing: true), the *WithContext methods
// automatically extract the OpenTelemetry trace and span IDs from the
// context and include them as trace_id / span_id fields, correlating logs
// with distributed traces.
//
// # Thread Safety
//
// All methods on Logger are safe for concurrent use by multiple goroutines.
package logger
