package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vertti/clfc/pkg/launchconfig"
	"github.com/vertti/clfc/pkg/output"
)

var (
	genLegacy          bool
	genQuoteArgs       bool
	genWorkspaceCwd    bool
	genCwd             string
	genNoSetupCommands bool
	genOutput          string
	genVerbose         bool
)

func init() {
	flags := rootCmd.Flags()
	// Everything after the binary path belongs to the debugged program.
	flags.SetInterspersed(false)

	flags.BoolVar(&genLegacy, "legacy", false, "original format: quoted args, ${workspaceFolder} cwd, no setup commands")
	flags.BoolVar(&genQuoteArgs, "quote-args", false, "wrap each argument in literal double quotes")
	flags.BoolVar(&genWorkspaceCwd, "workspace-cwd", false, "use ${workspaceFolder} as the working directory")
	flags.StringVar(&genCwd, "cwd", "", "working directory for the debugged program (default: current directory)")
	flags.BoolVar(&genNoSetupCommands, "no-setup-commands", false, "omit the gdb pretty-printing setup command")
	flags.StringVarP(&genOutput, "output", "o", "", "write the document to `file` instead of stdout")
	flags.BoolVarP(&genVerbose, "verbose", "v", false, "print resolved values to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	binary, targetArgs, err := launchconfig.Partition(append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}

	cfg, err := launchconfig.Build(&launchconfig.RealFileSystem{}, binary, targetArgs, buildOptions())
	if err != nil {
		return err
	}

	data, err := launchconfig.Render(launchconfig.NewDocument(cfg))
	if err != nil {
		panic(fmt.Sprintf("internal error: can't create launch json: %v", err))
	}

	if genVerbose {
		output.PrintDetails(cmd.ErrOrStderr(), "launch: "+cfg.Name, []string{
			"program: " + cfg.Program,
			"cwd: " + cfg.Cwd,
			fmt.Sprintf("args: %d", len(cfg.Args)),
		})
	}

	return writeDocument(cmd, data)
}

func buildOptions() launchconfig.Options {
	opts := launchconfig.Options{
		QuoteArgs:       genQuoteArgs,
		WorkspaceCwd:    genWorkspaceCwd,
		Cwd:             genCwd,
		NoSetupCommands: genNoSetupCommands,
	}
	if genLegacy {
		opts = launchconfig.LegacyOptions()
		opts.Cwd = genCwd
	}
	return opts
}

func writeDocument(cmd *cobra.Command, data []byte) error {
	if genOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(genOutput), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(genOutput, data, 0o644); err != nil { //nolint:gosec // launch.json is not secret
		return fmt.Errorf("failed to write %s: %w", genOutput, err)
	}
	return nil
}
