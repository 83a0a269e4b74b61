package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Aricalhe/podbundle/pkg/config"
	"github.com/Aricalhe/podbundle/pkg/filesystem"
	"github.com/Aricalhe/podbundle/pkg/installer"
	"github.com/Aricalhe/podbundle/pkg/logging"
	"github.com/Aricalhe/podbundle/pkg/manifest"
	"github.com/Aricalhe/podbundle/pkg/paths"
)

var installCmd = &cobra.Command{
	Use:   "install <manifest>",
	Short: "Generate support files for every aggregate target in the manifest",
	Long: `Reads a target manifest, runs one installation pass per aggregate
target, and writes each target's support files (xcconfig files,
build-phase scripts, acknowledgements) into the sandbox.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cli.install")

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}

		fs := filesystem.NewOS()
		sandbox := paths.NewSandbox(cfg.Sandbox.Root)

		targets, err := manifest.Load(fs, args[0], sandbox.Root)
		if err != nil {
			return err
		}

		inst := installer.New(fs, sandbox, nil, installer.Options{
			BridgeSupport: cfg.Install.BridgeSupport,
			Parallel:      cfg.Install.Parallel,
		})
		groups, err := inst.InstallAll(cmd.Context(), targets)
		if err != nil {
			return err
		}

		for _, target := range targets {
			group := groups[target.Name]
			logger.Info().
				Str("target", target.Name).
				Int("artifacts", len(group.Paths())).
				Msg("Target installed")
			pterm.Success.Printfln("%s: %d support files", target.Name, len(group.Paths()))
		}
		return nil
	},
}
