package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fgcomment/internal/config"
	"fgcomment/internal/logging"
	"fgcomment/internal/model"
	"fgcomment/internal/scan"
	"fgcomment/internal/tui"
	"fgcomment/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "fgcomment",
		Repository: "fgcomment",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/fgcomment/fgcomment/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func usage(fs *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: fgcomment [options] [config-file]\n\n")
		fmt.Fprintf(os.Stderr, "fgcomment lists the comments in a FortiOS configuration backup together\n")
		fmt.Fprintf(os.Stderr, "with their config/edit path, and generates a CLI script that removes them.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment (also read from ./.env):\n")
		fmt.Fprintf(os.Stderr, "  FGCOMMENT_INPUT, FGCOMMENT_MODE (none|wizard|wildcard), FGCOMMENT_PATTERN,\n")
		fmt.Fprintf(os.Stderr, "  FGCOMMENT_OUTPUT, FGCOMMENT_ADDR\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fgcomment fw.conf                    # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  fgcomment -r fw.conf                 # Print report to stdout\n")
		fmt.Fprintf(os.Stderr, "  fgcomment -s --wizard fw.conf        # Print removal script for wizard comments\n")
		fmt.Fprintf(os.Stderr, "  fgcomment -s --wildcard '*vpn*' -o remove-comments.cli fw.conf\n")
		fmt.Fprintf(os.Stderr, "  cat fw.conf | fgcomment --json -     # Output analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  fgcomment --web                      # Start Web Mode on http://localhost:8080\n")
	}
}

func main() {
	config.LoadDotEnv()

	fs := config.NewFlagSet("fgcomment", os.Stderr)
	fs.Usage = usage(fs)
	opts, err := config.Load(fs, os.Args[1:], os.Getenv)
	if errors.Is(err, config.ErrHelp) {
		fs.Usage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, opts.Verbose)

	if opts.Version {
		fmt.Printf("fgcomment version %s\n", model.Version)
		return
	}

	if opts.Update {
		checkUpdate(model.Version)
		return
	}

	if opts.Web {
		if err := web.StartServer(opts.Addr, logger); err != nil {
			fatal(err)
		}
		return
	}

	if opts.Input == "" {
		fmt.Fprintf(os.Stderr, "Error: no configuration file given\n\n")
		fs.Usage()
		os.Exit(2)
	}

	switch {
	case opts.Report || opts.Script:
		runReportMode(opts, logger)
	case opts.JSON:
		runJsonMode(opts, logger)
	default:
		runTuiMode(opts, logger)
	}
}

func analyze(opts *config.Options, logger *slog.Logger) model.AnalysisResult {
	text, err := scan.ReadSource(opts.Input)
	if err != nil {
		fatal(err)
	}
	return scan.NewAnalyzer(logger).Analyze(text, opts.Mode)
}

func runReportMode(opts *config.Options, logger *slog.Logger) {
	result := analyze(opts, logger)

	if opts.Script {
		if opts.Output != "" {
			if err := scan.WriteScript(opts.Output, result.Script); err != nil {
				fatal(err)
			}
			fmt.Fprintf(os.Stderr, "%s Script saved to %s\n", result.Summary, opts.Output)
			return
		}
		fmt.Print(scan.ScriptFile(result.Script))
		return
	}

	report := scan.GenerateReport(result, opts.Verbose)
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(report), 0644); err != nil {
			fatal(fmt.Errorf("write report %s: %w", opts.Output, err))
		}
		fmt.Printf("Report saved to %s\n", opts.Output)
		return
	}
	fmt.Print(report)
}

func runJsonMode(opts *config.Options, logger *slog.Logger) {
	result := analyze(opts, logger)

	var out io.Writer = os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fatal(fmt.Errorf("create %s: %w", opts.Output, err))
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fatal(fmt.Errorf("encode analysis: %w", err))
	}
}

func runTuiMode(opts *config.Options, logger *slog.Logger) {
	if opts.Input == scan.Stdin {
		fatal(errors.New("reading from stdin needs --report, --script or --json"))
	}

	// stderr belongs to the alt screen; debug output goes to a file instead.
	logger = logging.Discard()
	if opts.Verbose {
		f, err := os.OpenFile("fgcomment-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fatal(fmt.Errorf("open debug log: %w", err))
		}
		defer f.Close()
		logger = logging.New(f, true)
	}

	tuiOpts := tui.Options{
		Path:     opts.Input,
		Mode:     opts.Mode,
		SavePath: opts.Output,
		Logger:   logger,
	}
	if opts.Watch {
		w, err := scan.NewWatcher(opts.Input, logger)
		if err != nil {
			fatal(err)
		}
		defer w.Close()
		tuiOpts.Watcher = w
	}

	m := tui.InitialModel(tuiOpts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
