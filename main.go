package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/editor-menubar/internal/app"
	"github.com/atomicstack/editor-menubar/internal/config"
	"github.com/atomicstack/editor-menubar/internal/logging"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

// run loads configuration, starts the editor and returns the exit code:
// 2 for configuration errors, 1 for runtime failures.
func run(args, environ []string, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// startupTracePayload records how the editor was launched.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"document": describeDocument(cfg.App.File),
		"tty":      probeTerminals(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type documentInfo struct {
	Path   string `json:"path,omitempty"`
	Exists bool   `json:"exists"`
	Bytes  int64  `json:"bytes,omitempty"`
	Error  string `json:"error,omitempty"`
}

// describeDocument reports whether the document file is present before the
// editor reads it.
func describeDocument(path string) documentInfo {
	info := documentInfo{Path: path}
	if path == "" {
		return info
	}
	st, err := os.Stat(path)
	switch {
	case err == nil:
		info.Exists = true
		info.Bytes = st.Size()
	case !os.IsNotExist(err):
		info.Error = err.Error()
	}
	return info
}

type terminalReport struct {
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminals checks the standard descriptors; the first one that is a
// terminal with a readable size provides the reported size.
func probeTerminals() terminalReport {
	files := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	report := terminalReport{Probes: make([]terminalProbe, 0, len(files))}
	for _, f := range files {
		probe := probeTerminal(f.name, int(f.file.Fd()))
		if report.Size == nil && probe.IsTerminal && probe.Error == "" {
			report.Size = &terminalSize{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		report.Probes = append(report.Probes, probe)
	}
	return report
}

func probeTerminal(name string, fd int) terminalProbe {
	probe := terminalProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
