package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/buildinfo"
)

// Execute runs the armature CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (validate, pose,
// joints, set, solve, render, jog), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The passed ctx carries signal cancellation from main, so
// a SIGINT during a long solve aborts the command cleanly.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "armature",
		Short:        "Armature poses and solves link-tree mechanisms",
		Long:         `Armature is a CLI tool for working with articulated link-tree mechanisms: computing forward kinematics, solving inverse-kinematics targets, and rendering the scene structure.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newPoseCmd())
	root.AddCommand(newJointsCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newJogCmd())

	return root.ExecuteContext(ctx)
}
