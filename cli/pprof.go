//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/pkg"
	"github.com/ardnew/phpgen/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

// start starts profiling if a mode was selected.
func (c pprofConfig) start(ctx context.Context) (stop func()) {
	if c.Mode == "" {
		return func() {}
	}

	attrs := []slog.Attr{slog.String("mode", c.Mode), slog.String("dir", c.Dir)}

	log.DebugContext(ctx, "pprof start", attrs...)

	p := profile.Start(
		profile.WithMode(c.Mode),
		profile.WithPath(c.Dir),
		profile.WithQuiet(true),
	)

	return func() {
		log.DebugContext(ctx, "pprof stop", attrs...)
		p.Stop()
	}
}
