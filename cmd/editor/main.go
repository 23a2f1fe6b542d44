package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/InAnYan/EditorAttempt1/internal/cli"
	"github.com/InAnYan/EditorAttempt1/internal/config"
	"github.com/InAnYan/EditorAttempt1/internal/editor"
	cerr "github.com/InAnYan/EditorAttempt1/internal/errors"
	"github.com/InAnYan/EditorAttempt1/internal/terminal"
	"github.com/InAnYan/EditorAttempt1/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Parse global --no-color flag before anything prints.
	args = filterGlobalFlags(args)

	var files []string
	for _, arg := range args {
		switch arg {
		case "--version", "-v":
			fmt.Fprintf(stdout, "editor v%s\n", version.Info())
			return cerr.StatusOK
		case "--help", "-h":
			printUsage(stdout)
			return cerr.StatusOK
		case "--init-settings":
			return initSettings(stdout, stderr)
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				fmt.Fprintln(stderr, cli.Error(fmt.Sprintf("Unknown flag: %s", arg)))
				fmt.Fprintln(stderr)
				printUsage(stderr)
				return cerr.StatusUsage
			}
			files = append(files, arg)
		}
	}

	if len(files) != 1 {
		fmt.Fprintln(stderr, cli.Error("Expected exactly one file to edit"))
		fmt.Fprintln(stderr)
		printUsage(stderr)
		return cerr.StatusUsage
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, cli.Error(fmt.Sprintf("Error loading settings: %v", err)))
		return cerr.StatusFatal
	}

	log, closeLog, err := openLog(settings.LogFile)
	if err != nil {
		fmt.Fprintln(stderr, cli.Error(fmt.Sprintf("Error opening log file: %v", err)))
		return cerr.StatusFatal
	}
	defer closeLog()

	if err := edit(files[0], settings, log); err != nil {
		return reportFatal(log, stderr, err)
	}
	return cerr.StatusOK
}

// reportFatal logs err by kind and prints it once the terminal is restored.
func reportFatal(log *slog.Logger, stderr io.Writer, err error) int {
	if cerr.IsImplementation(err) {
		log.Error("terminal failure", "err", err)
	} else {
		log.Error("fatal", "err", err)
	}
	fmt.Fprintln(stderr, cli.Error("FATAL ERROR: "+err.Error()))
	return cerr.ExitStatus(err)
}

// filterGlobalFlags strips --no-color from the args list and applies it.
func filterGlobalFlags(args []string) []string {
	var filtered []string
	for _, arg := range args {
		if arg == "--no-color" {
			cli.ColorEnabled = false
		} else {
			filtered = append(filtered, arg)
		}
	}
	return filtered
}

// edit runs one editing session on the controlling terminal. The terminal
// is restored on every return path once it has been opened.
func edit(path string, s *config.Settings, log *slog.Logger) error {
	fg, bg, err := s.Colors()
	if err != nil {
		return err
	}

	d, err := terminal.NewStd()
	if err != nil {
		return err
	}
	defer func() {
		if err := terminal.ExitRawMode(d); err != nil {
			log.Warn("restoring terminal", "err", err)
		}
	}()

	if err := terminal.EnterRawMode(d); err != nil {
		return err
	}
	if err := d.SetReadTimeout(s.ReadTimeoutMS); err != nil {
		return err
	}

	e, err := editor.Open(path, editor.Options{
		TabStop:         s.TabStop,
		QuitTimes:       s.QuitTimes,
		MessageLifetime: s.MessageLifetime,
		Foreground:      fg,
		Background:      bg,
		Logger:          log,
	})
	if err != nil {
		return err
	}
	return editor.Run(d, e)
}

// openLog returns a text logger writing to path, or a discarding logger
// when path is empty.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

// initSettings writes the default settings file unless one exists.
func initSettings(stdout, stderr io.Writer) int {
	path := config.Path()
	if path == "" {
		fmt.Fprintln(stderr, cli.Error("Could not find home directory; set "+config.EnvPath))
		return cerr.StatusFatal
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintln(stderr, cli.Warn(fmt.Sprintf("%s already exists, leaving it unchanged", path)))
		return cerr.StatusOK
	} else if !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, cli.Error(fmt.Sprintf("Error checking %s: %v", path, err)))
		return cerr.StatusFatal
	}

	if err := config.SaveTo(path, config.Defaults()); err != nil {
		fmt.Fprintln(stderr, cli.Error(err.Error()))
		return cerr.StatusFatal
	}
	fmt.Fprintln(stdout, cli.Info("Wrote default settings to "+path))
	return cerr.StatusOK
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Editor — a small terminal text editor.

Usage:
  editor [flags] <file>

Keys:
  Ctrl-S            Save
  Ctrl-Q            Quit (press repeatedly to discard unsaved changes)
  Arrows, Home, End, PageUp, PageDown   Move the cursor

Flags:
  --no-color        Disable colored output
  --init-settings   Write the default settings file
  --version, -v     Print the editor version
  --help, -h        Show this help message

Settings:
  ~/.editor/settings.json, or the file named by $EDITOR_SETTINGS
`)
}
