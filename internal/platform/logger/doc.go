// Package logger provides structured logging for the application.
//
// It builds a go.uber.org/zap logger from the server configuration and
// carries request-scoped loggers through context.Context.
package logger
