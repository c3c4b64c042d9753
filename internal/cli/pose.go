package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/kinematics"
	"github.com/armlab/armature/pkg/scene"
	"github.com/armlab/armature/pkg/sceneio"
)

// poseOpts holds the command-line flags for the pose command.
type poseOpts struct {
	link    string // restrict output to a single link ID
	jsonOut bool   // emit machine-readable JSON instead of a table
}

// newPoseCmd creates the pose command for computing forward kinematics.
// It loads a scene, walks the tree once, and prints the world-frame origin of
// every link (or a single link with --link).
func newPoseCmd() *cobra.Command {
	var opts poseOpts

	cmd := &cobra.Command{
		Use:   "pose [file]",
		Short: "Compute world-frame link poses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPose(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.link, "link", "l", "", "only show the named link")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit origins as JSON")

	return cmd
}

func runPose(cmd *cobra.Command, input string, opts *poseOpts) error {
	logger := loggerFromContext(cmd.Context())

	s, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene: %d links", s.LinkCount())

	world := kinematics.Compute(s)

	links := s.Links()
	if opts.link != "" {
		l, ok := s.Link(scene.LinkID(opts.link))
		if !ok {
			return fmt.Errorf("unknown link: %s", opts.link)
		}
		links = []*scene.Link{l}
	}

	if opts.jsonOut {
		return writePoseJSON(world, links)
	}

	printPoseTable(world, links)
	return nil
}

func writePoseJSON(world kinematics.WorldState, links []*scene.Link) error {
	out := make(map[string][3]float64, len(links))
	for _, l := range links {
		if p, ok := world[l.ID]; ok {
			out[string(l.ID)] = [3]float64{p.Origin.X(), p.Origin.Y(), p.Origin.Z()}
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printPoseTable(world kinematics.WorldState, links []*scene.Link) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(links))
	for _, l := range links {
		p, ok := world[l.ID]
		if !ok {
			continue
		}
		name := l.Name
		if name == "" {
			name = string(l.ID)
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.4f", p.Origin.X()),
			fmt.Sprintf("%.4f", p.Origin.Y()),
			fmt.Sprintf("%.4f", p.Origin.Z()),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Link", "X", "Y", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleHighlight
		})

	fmt.Println(t.Render())
}
