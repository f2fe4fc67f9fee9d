package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vertti/clfc/pkg/launchconfig"
	"github.com/vertti/clfc/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

const usageHint = "usage: clfc [flags] <binary> [args...]   (example: clfc ./a.out > .vscode/launch.json)"

var rootCmd = &cobra.Command{
	Use:   "clfc [flags] <binary> [args...]",
	Short: "Generate a cppdbg launch configuration for a native binary",
	Long: "clfc prints a launch.json document that debugs <binary> with the given arguments.\n" +
		"Redirect the output into .vscode/launch.json or use --output.",
	Example:       "  clfc ./a.out x y > .vscode/launch.json\n  clfc --legacy -o .vscode/launch.json build/app --port 8080",
	Version:       Version,
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and reports any error on stderr.
// It returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(normalizeHelpArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		output.PrintError(stderr, err)
		if errors.Is(err, launchconfig.ErrNoBinary) {
			output.PrintHint(stderr, usageHint)
		}
		return 1
	}
	return 0
}

// normalizeHelpArgs rewrites "-help" among the leading flags to "--help".
// pflag would otherwise read it as a cluster of shorthand flags.
// Values of flags such as -o are skipped, and arguments after the binary
// path belong to the target and are left alone.
func normalizeHelpArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	flags := rootCmd.Flags()
	for i := 0; i < len(out); i++ {
		arg := out[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}
		if launchconfig.IsHelpFlag(arg) {
			out[i] = "--help"
			continue
		}
		if expectsValue(flags, arg) {
			i++
		}
	}
	return out
}

// expectsValue reports whether arg is a flag whose value is the next token.
func expectsValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f := flags.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}

	// Shorthand cluster such as -vo: only the last flag can take the next token.
	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		f := flags.ShorthandLookup(shorthands[i : i+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return i == len(shorthands)-1
		}
	}
	return false
}
