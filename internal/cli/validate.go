package cli

import (
	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/sceneio"
)

// newValidateCmd creates the validate command.
// It loads a scene file, which runs the full boundary validation (link ID
// rules, parent resolution, single root, tree shape), and reports the result.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a scene file for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debugf("Validating %s", args[0])

			s, err := sceneio.ImportJSON(args[0])
			if err != nil {
				printError("%s: %v", args[0], err)
				return err
			}

			printSuccess("%s is a valid scene", args[0])
			printStats(s.LinkCount(), len(s.JointValues()))
			return nil
		},
	}
}
