package launchconfig

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Options selects between the supported launch configuration shapes.
// The zero value produces the current shape: verbatim arguments, the real
// working directory and the pretty-printing setup command.
type Options struct {
	QuoteArgs       bool   // wrap every argument in literal double quotes
	WorkspaceCwd    bool   // use the ${workspaceFolder} placeholder as cwd
	Cwd             string // explicit working directory; made absolute unless it is a ${...} variable
	NoSetupCommands bool   // omit setupCommands
}

// LegacyOptions returns the options matching the original output format.
func LegacyOptions() Options {
	return Options{QuoteArgs: true, WorkspaceCwd: true, NoSetupCommands: true}
}

// Validate reports conflicting options.
func (o Options) Validate() error {
	if o.WorkspaceCwd && o.Cwd != "" {
		return fmt.Errorf("cwd %q cannot be combined with the %s placeholder", o.Cwd, WorkspaceFolder)
	}
	return nil
}

// Build resolves binary and assembles the configuration for it.
func Build(fsys FileSystem, binary string, args []string, opts Options) (Configuration, error) {
	if err := opts.Validate(); err != nil {
		return Configuration{}, err
	}

	program, err := ResolveProgram(fsys, binary)
	if err != nil {
		return Configuration{}, err
	}
	if !utf8.ValidString(program) {
		return Configuration{}, fmt.Errorf("binary path %q is not valid UTF-8", program)
	}
	for i, a := range args {
		if !utf8.ValidString(a) {
			return Configuration{}, fmt.Errorf("argument %d (%q) is not valid UTF-8", i+1, a)
		}
	}

	cwd, err := resolveCwd(fsys, opts)
	if err != nil {
		return Configuration{}, err
	}

	cfg := Configuration{
		Name:    ConfigName,
		Type:    DebuggerType,
		Request: RequestLaunch,
		Args:    convertArgs(args, opts.QuoteArgs),
		Program: program,
		Cwd:     cwd,
	}
	if !opts.NoSetupCommands {
		cfg.SetupCommands = []SetupCommand{PrettyPrinting}
	}
	return cfg, nil
}

func resolveCwd(fsys FileSystem, opts Options) (string, error) {
	switch {
	case opts.WorkspaceCwd:
		return WorkspaceFolder, nil
	case strings.HasPrefix(opts.Cwd, "${"):
		// IDE variable such as ${workspaceFolder}/build, expanded at launch.
		return opts.Cwd, nil
	case opts.Cwd != "":
		dir, err := fsys.Abs(opts.Cwd)
		if err != nil {
			return "", fmt.Errorf("cwd %q is invalid: %w", opts.Cwd, err)
		}
		return dir, nil
	default:
		dir, err := fsys.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return dir, nil
	}
}

// convertArgs never returns nil so an empty list renders as [].
func convertArgs(args []string, quote bool) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if quote {
			out[i] = `"` + a + `"`
		} else {
			out[i] = a
		}
	}
	return out
}
