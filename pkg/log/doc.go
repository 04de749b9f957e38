// Package log provides the classification trace log for ped.
//
// Every classification run emits Events describing what was asked, what
// category came back, which chart was written and which requests were
// rejected. The trace is separate from operational logging (slog): it is a
// machine-readable record that the "ped trace" commands can view, filter,
// aggregate and export.
//
// # Basic Usage
//
// Front ends configure tracing through the service Config:
//
//	// Append to a CBOR file
//	fl, _ := log.NewFileLogger("classify.plog")
//	defer fl.Close()
//	svc, _ := service.New(service.Config{Registry: registry, Trace: fl})
//
//	// Also print every event via slog (Config.Logger wraps it in a SlogAdapter)
//	svc, _ := service.New(service.Config{Registry: registry, Trace: fl, Logger: slog.Default()})
//
//	// Several sinks
//	trace := log.NewMultiLogger(fl, other)
//
// # Event Kinds
//
//   - Classification: inputs, rule and category (ClassificationEvent)
//   - Chart: path of a rendered SVG (ChartEvent)
//   - Error: rejected input or failed render (ErrorEventData)
//
// # File Format
//
// Trace files are a plain concatenation of CBOR-encoded events with the
// .plog extension. Files opened again are appended to.
package log
