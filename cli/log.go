package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/phpgen/log"
)

// logLevel configures the logger level as a side effect of parsing, so
// that messages emitted while kong is still parsing already honor it.
type logLevel struct{ log.Level }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	if err := l.Level.UnmarshalText(text); err != nil {
		return err
	}

	log.Config(log.WithLevel(l.Level))

	return nil
}

// logFormat configures the logger format as a side effect of parsing.
type logFormat struct{ log.Format }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	if err := f.Format.UnmarshalText(text); err != nil {
		return err
	}

	log.Config(log.WithFormat(f.Format))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevelDefault}"  enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"${logFormatDefault}" enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"${logTimeDefault}"                           help:"Set timestamp format."`
	Caller     bool      `default:"false"                                       help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                        help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":     strings.Join(slices.Collect(log.Levels()), ","),
		"logLevelDefault":  log.DefaultLevel.String(),
		"logFormatEnum":    strings.Join(slices.Collect(log.Formats()), ","),
		"logFormatDefault": log.DefaultFormat.String(),
		"logTimeDefault":   "RFC3339",
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

func (c *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(c.Level.Level),
		log.WithFormat(c.Format.Format),
		log.WithTimeLayout(c.TimeLayout),
		log.WithCaller(c.Caller),
		log.WithPretty(c.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", c.Level.String()),
		slog.String("format", c.Format.String()),
		slog.String("time", c.TimeLayout),
		slog.Bool("caller", c.Caller),
		slog.Bool("pretty", c.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them. Boolean
// flags never reach a TextUnmarshaler, so without this pass --log-pretty
// and --log-caller would only take effect after parsing.
func (c *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, value, assigned := strings.Cut(arg, "=")

		next := func() string {
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return value
		}

		flag := func(negated bool) bool {
			if !assigned {
				return !negated
			}

			b, err := strconv.ParseBool(value)
			if err != nil {
				return false
			}

			return b != negated
		}

		switch name {
		case "--log-level":
			_ = c.Level.UnmarshalText([]byte(next()))
		case "--log-format":
			_ = c.Format.UnmarshalText([]byte(next()))
		case "--log-pretty", "--no-log-pretty":
			c.Pretty = flag(name == "--no-log-pretty")
			log.Config(log.WithPretty(c.Pretty))
		case "--log-caller", "--no-log-caller":
			c.Caller = flag(name == "--no-log-caller")
			log.Config(log.WithCaller(c.Caller))
		}
	}
}
