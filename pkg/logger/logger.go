package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.Default()

// Init configures the package logger. Production gets JSON output,
// everything else gets text.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass bare values (commonly an error) instead
// of key/value pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		for i := 0; i < len(args); i += 2 {
			if _, ok := args[i].(string); !ok {
				return wrap(args)
			}
		}
		return args
	}

	return wrap(args)
}

func wrap(args []any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		out = append(out, slog.Any("detail", a))
	}
	return out
}
