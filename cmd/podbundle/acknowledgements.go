package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Aricalhe/podbundle/pkg/config"
	"github.com/Aricalhe/podbundle/pkg/filesystem"
	"github.com/Aricalhe/podbundle/pkg/generators"
	"github.com/Aricalhe/podbundle/pkg/manifest"
	"github.com/Aricalhe/podbundle/pkg/paths"
	"github.com/Aricalhe/podbundle/pkg/types"
)

var acknowledgementsCmd = &cobra.Command{
	Use:   "acknowledgements <manifest> <target>",
	Short: "Preview the acknowledgements for an aggregate target",
	Long: `Renders the acknowledgements document an installation pass would
generate for the named aggregate target, without writing anything.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}

		sandbox := paths.NewSandbox(cfg.Sandbox.Root)
		targets, err := manifest.Load(filesystem.NewOS(), args[0], sandbox.Root)
		if err != nil {
			return err
		}

		var target *types.AggregateTarget
		for _, t := range targets {
			if t.Name == args[1] {
				target = t
				break
			}
		}
		if target == nil {
			return fmt.Errorf("no target %q in manifest", args[1])
		}

		var accessors []*types.FileAccessor
		for _, pt := range target.PodTargets {
			accessors = append(accessors, pt.FileAccessors...)
		}
		gen := &generators.AcknowledgementsMarkdown{
			TargetName: target.Name,
			Accessors:  accessors,
		}
		content, err := gen.Generate()
		if err != nil {
			return err
		}

		rendered, err := glamour.Render(string(content), "auto")
		if err != nil {
			// Fall back to the raw markdown when the terminal cannot
			// render styled output
			rendered = string(content)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
