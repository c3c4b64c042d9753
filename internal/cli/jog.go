package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/sceneio"
)

// newJogCmd creates the jog command for interactively nudging joints.
// Arrow keys move and adjust; the effector position updates live. Pressing
// "s" writes the current pose to --output (default: the input file).
func newJogCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "jog [file]",
		Short: "Interactively nudge joints with live pose feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sceneio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}

			p := tea.NewProgram(NewJogModel(s, output), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file written on save (default: input file)")

	return cmd
}
