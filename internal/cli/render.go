package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/render/dot"
	"github.com/armlab/armature/pkg/sceneio"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path (default: derived from input)
	format     string // "dot" or "svg"
	detailed   bool   // include geometry and joint limits in labels
	configPath string // optional TOML config file
}

// newRenderCmd creates the render command for generating scene diagrams.
// It emits the scene tree as Graphviz DOT or as a rendered SVG, one node per
// link with joint state folded into the labels.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the scene tree as a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default) or dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include geometry and joint limits in labels")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: armature.toml if present)")

	return cmd
}

func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	format := opts.format
	if format == "" {
		format = cfg.Render.Format
	}
	detailed := opts.detailed || cfg.Render.Detailed

	s, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene: %d links", s.LinkCount())

	graph := dot.ToDOT(s, dot.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(graph)
	case "svg":
		logger.Info("Rendering SVG")
		data, err = dot.RenderSVG(graph)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", format)
	}

	path := outputPath(opts.output, input, format)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	logger.Infof("Generated %s", path)
	return nil
}
