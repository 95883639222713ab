// Package log provides the structured logger used by phpgen, based on
// [log/slog].
//
// Loggers are immutable values configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("rendered", slog.String("file", "User.php"))
//
// Attributes added with [Logger.With] are included in every subsequent
// message:
//
//	logger = logger.With(slog.String("manifest", "models.yaml"))
//
// # Levels
//
// The package adds [LevelTrace] below slog's four levels. Messages below
// the configured level are discarded.
//
// # Output
//
// [FormatText] and [FormatJSON] are supported. With [WithPretty] the text
// format is colorized when the output is a terminal. JSON output is never
// colorized.
//
// # Default Logger
//
// Package-level functions such as [Info] and [ErrorContext] use a default
// logger writing to [os.Stderr], so that generated code written to
// standard output is never interleaved with log messages. [Config]
// reconfigures it.
package log
