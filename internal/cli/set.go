package cli

import (
	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/sceneio"
)

// newSetCmd creates the set command for assigning joint values.
// Values outside the joint's limits are clamped rather than rejected; the
// value in effect after clamping is reported. The updated scene is written to
// --output, or stdout when no output is given.
func newSetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "set [file] name=value...",
		Short: "Assign joint values by name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			assignments, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}

			s, err := sceneio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			for _, a := range assignments {
				if err := s.SetJointValue(a.name, a.value); err != nil {
					return err
				}
				j, _ := s.Joint(a.name)
				if j.Value != a.value {
					logger.Warnf("%s: %.3f clamped to %.3f (limits [%.0f, %.0f])",
						a.name, a.value, j.Value, j.Min, j.Max)
				} else {
					logger.Debugf("%s = %.3f", a.name, j.Value)
				}
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := sceneio.WriteJSON(s, out); err != nil {
				return err
			}
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
