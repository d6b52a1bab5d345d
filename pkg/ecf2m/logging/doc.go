// Package logging provides the structured logging surface for ecf2m.
//
// The library logs through a small Logger interface backed by log/slog, so
// applications can plug in their own handler or a redacting wrapper:
//
//	logger := logging.New(nil) // slog.Default()
//	sess, err := ecf2m.NewSession(curve.K163, ecf2m.WithLogger(logger))
//
// Sensitive values are never logged verbatim; use logging.Redacted to mark
// attributes whose values were withheld:
//
//	logger.Info(ctx, "point installed", logging.Redacted("x_bytes"))
package logging
