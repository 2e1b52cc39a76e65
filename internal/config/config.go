// Package config resolves command-line flags, environment variables and an
// optional .env file into the options main runs with.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"fgcomment/internal/model"
)

// ErrHelp is returned when -h/--help was given.
var ErrHelp = pflag.ErrHelp

const envPrefix = "FGCOMMENT_"

// Options is the resolved runtime configuration.
type Options struct {
	Input   string // Config file, "-" for stdin
	Mode    model.FilterMode
	Output  string // Where to save the report or script
	Addr    string // Listen address for web mode
	Verbose bool
	Watch   bool

	Report  bool
	Script  bool
	JSON    bool
	Web     bool
	Version bool
	Update  bool
}

// LoadDotEnv loads .env from the working directory if present. Variables
// already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// NewFlagSet declares the command-line flags.
func NewFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringP("input", "i", "", "FortiOS configuration file to scan ('-' for stdin)")
	fs.Bool("wizard", false, "Only select comments created by a setup wizard")
	fs.String("wildcard", "", "Only select comments matching a * / ? pattern")
	fs.BoolP("report", "r", false, "Print a report of the matches and the removal script (CLI mode)")
	fs.BoolP("script", "s", false, "Print only the removal script (CLI mode)")
	fs.BoolP("json", "j", false, "Output the analysis as JSON")
	fs.StringP("output", "o", "", "Save the report or script to the specified file")
	fs.BoolP("verbose", "v", false, "Include raw paths in the report and enable debug logging")
	fs.BoolP("web", "w", false, "Start Web Mode")
	fs.String("addr", "localhost:8080", "Listen address for Web Mode")
	fs.Bool("watch", false, "Re-scan the input when it changes on disk (TUI mode)")
	fs.BoolP("version", "V", false, "Print version information")
	fs.BoolP("update", "u", false, "Check for a newer release")
	fs.BoolP("help", "h", false, "Show this help message")
	return fs
}

// Load parses args with fs and fills in anything not given on the command
// line from getenv. The first positional argument is taken as the input
// when --input is not set.
func Load(fs *pflag.FlagSet, args []string, getenv func(string) string) (*Options, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if help, _ := fs.GetBool("help"); help {
		return nil, ErrHelp
	}

	opts := &Options{}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("only one input file can be scanned, got %d", fs.NArg())
	}
	switch {
	case fs.Changed("input"):
		opts.Input, _ = fs.GetString("input")
	case fs.NArg() == 1:
		opts.Input = fs.Arg(0)
	default:
		opts.Input = stringOpt(fs, "input", getenv)
	}
	opts.Output = stringOpt(fs, "output", getenv)
	opts.Addr = stringOpt(fs, "addr", getenv)

	for name, dst := range map[string]*bool{
		"report":  &opts.Report,
		"script":  &opts.Script,
		"json":    &opts.JSON,
		"web":     &opts.Web,
		"verbose": &opts.Verbose,
		"watch":   &opts.Watch,
		"version": &opts.Version,
		"update":  &opts.Update,
	} {
		*dst, _ = fs.GetBool(name)
	}

	mode, err := resolveMode(fs, getenv)
	if err != nil {
		return nil, err
	}
	opts.Mode = mode

	if opts.Report && opts.Script {
		return nil, errors.New("--report and --script cannot be combined")
	}
	return opts, nil
}

// resolveMode applies the flag > env precedence to the filter selection.
func resolveMode(fs *pflag.FlagSet, getenv func(string) string) (model.FilterMode, error) {
	wizard, _ := fs.GetBool("wizard")
	wildcardSet := fs.Changed("wildcard")
	pattern, _ := fs.GetString("wildcard")

	if wizard || wildcardSet {
		return model.ModeFromSelection(wizard, wildcardSet, pattern)
	}
	return model.ParseMode(getenv(envPrefix+"MODE"), getenv(envPrefix+"PATTERN"))
}

// stringOpt returns the flag value if it was given, else the environment
// variable, else the flag default.
func stringOpt(fs *pflag.FlagSet, name string, getenv func(string) string) string {
	v, _ := fs.GetString(name)
	if fs.Changed(name) {
		return v
	}
	if env := strings.TrimSpace(getenv(envPrefix + strings.ToUpper(name))); env != "" {
		return env
	}
	return v
}
