package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/scene"
	"github.com/armlab/armature/pkg/sceneio"
)

// newJointsCmd creates the joints command.
// It lists every joint in the scene with its kind, axis, current value,
// limits, and owning link, in deterministic link order.
func newJointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "joints [file]",
		Short: "List joints with values and limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sceneio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			printJointTable(s)
			return nil
		},
	}
}

func printJointTable(s *scene.Scene) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, l := range s.Links() {
		for _, j := range l.Joints {
			unit := "deg"
			if j.Kind == scene.Linear {
				unit = "mm"
			}
			rows = append(rows, []string{
				j.Name,
				j.Kind.String(),
				j.Axis.String(),
				fmt.Sprintf("%.2f %s", j.Value, unit),
				fmt.Sprintf("[%.0f, %.0f]", j.Min, j.Max),
				string(l.ID),
			})
		}
	}

	if len(rows) == 0 {
		printInfo("scene has no joints")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Joint", "Kind", "Axis", "Value", "Limits", "Link").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleValue
			case 3:
				return StyleHighlight
			default:
				return StyleDim
			}
		})

	fmt.Println(t.Render())
}
