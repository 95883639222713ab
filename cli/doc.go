// Package cli contains the command line interface for phpgen.
//
// # Usage
//
//	phpgen [flags] render [manifest]
//	phpgen [flags] openapi SPEC
//	phpgen [flags] init
//	phpgen version
//
// The render command is the default, so a manifest on stdin is enough:
//
//	phpgen < models.yaml
//
// # Configuration
//
// Flag defaults may be set in config.yaml (or config.json) below the user
// configuration directory, for example ~/.config/phpgen/config.yaml:
//
//	log:
//	  level: debug
//	render:
//	  pretty: false
//
// The init command writes this file from the current global flags.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/phpgen/pprof)
package cli
