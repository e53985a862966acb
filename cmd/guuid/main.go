// guuid CLI entry point
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

const usage = `usage: guuid <command> [flags] [args]

commands:
  gen      generate UUIDs (versions 3, 4, 5, 6, 7)
  inspect  print version, variant and embedded time of UUID strings
  version  print the program version

environment:
  GUUID_LOG_LEVEL  debug, info, warn or error (default warn)
  GUUID_LOG_JSON   log as JSON when set to 1 or true
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, os.Getenv("GUUID_LOG_LEVEL"), os.Getenv("GUUID_LOG_JSON"))

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "gen":
		err = runGen(args[1:], stdout, logger)
	case "inspect":
		err = runInspect(args[1:], stdout, logger)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "guuid %s\n", version)
		return 0
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		logger.Error("command failed", slog.String("command", args[0]), slog.Any("error", err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds a text or JSON slog logger writing to w. An unparsable
// level falls back to warn and is reported through the new logger.
func newLogger(w io.Writer, level, asJSON string) *slog.Logger {
	lvl := slog.LevelWarn
	var levelErr error
	if level != "" {
		levelErr = lvl.UnmarshalText([]byte(level))
		if levelErr != nil {
			lvl = slog.LevelWarn
		}
	}

	options := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(w, options)
	if asJSON == "1" || asJSON == "true" {
		h = slog.NewJSONHandler(w, options)
	}

	logger := slog.New(h)
	if levelErr != nil {
		logger.Warn("failed to parse log level",
			slog.String("input", level),
			slog.String("default", "warn"),
			slog.Any("error", levelErr),
		)
	}
	return logger
}
