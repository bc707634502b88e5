// Package logging provides a minimal logging facade for the GMT binding.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. Two adapters are provided: New binds to a
// *slog.Logger and NewZap binds to a *zap.Logger.
//
//	import (
//	    "log/slog"
//	    "github.com/genericmappingtools/gmt-go/pkg/gmt/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
//	// Route into zap
//	z, _ := zap.NewProduction()
//	logger = logging.NewZap(z)
//
// The loader and the marshal package never log. gmt.Runtime logs session
// lifecycle events at debug level through the Logger in gmt.Config.
package logging
