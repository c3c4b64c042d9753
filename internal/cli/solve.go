package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/armlab/armature/pkg/kinematics"
	"github.com/armlab/armature/pkg/scene"
	"github.com/armlab/armature/pkg/sceneio"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	link          string // target link ID (default: deepest leaf)
	target        string // goal point as "x,y,z" in meters
	output        string // output file for the solved scene
	configPath    string // optional TOML config file
	maxIterations int    // sweep budget override (0 = config/default)
	tolerance     float64
}

// newSolveCmd creates the solve command for inverse kinematics.
// It pulls the target link's world origin toward a goal point by cyclic
// coordinate descent over the root-to-target joint chain, then writes the
// solved scene to --output (or stdout).
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Pull a link toward a world-space target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.link, "link", "l", "", "link to move (default: deepest leaf)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "goal point as x,y,z in meters (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for the solved scene (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: armature.toml if present)")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", 0, "sweep budget (default from config)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "convergence distance in meters (default from config)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runSolve(cmd *cobra.Command, input string, opts *solveOpts) error {
	logger := loggerFromContext(cmd.Context())

	goal, err := parseVec3(opts.target)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	solverOpts := kinematics.Options{
		MaxIterations: cfg.Solver.MaxIterations,
		Tolerance:     cfg.Solver.Tolerance,
	}
	if opts.maxIterations > 0 {
		solverOpts.MaxIterations = opts.maxIterations
	}
	if opts.tolerance > 0 {
		solverOpts.Tolerance = opts.tolerance
	}

	s, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}

	target := scene.LinkID(opts.link)
	if target == "" {
		target = deepestLeaf(s)
		if target == "" {
			return fmt.Errorf("scene is empty")
		}
		logger.Debugf("No link given, targeting deepest leaf %s", target)
	}

	p := newProgress(logger)
	result, err := kinematics.Solve(s, target, goal, solverOpts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Solved %s in %d sweeps", target, result.Iterations))

	if result.Converged {
		printSuccess("converged at %.4f m from goal", result.Distance)
	} else {
		printWarning("did not converge: %.4f m from goal after %d sweeps", result.Distance, result.Iterations)
	}
	for _, name := range sortedKeys(result.Values) {
		printDetail("%s = %.3f", name, result.Values[name])
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := sceneio.WriteJSON(result.Scene, out); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// deepestLeaf returns the link with the longest root path, breaking ties by
// ID order. It is the natural default effector for chain-like mechanisms.
func deepestLeaf(s *scene.Scene) scene.LinkID {
	var (
		best  scene.LinkID
		depth = -1
	)
	for _, l := range s.Links() {
		if len(l.Children) > 0 {
			continue
		}
		path, err := s.Path(l.ID)
		if err != nil {
			continue
		}
		if len(path) > depth {
			best, depth = l.ID, len(path)
		}
	}
	return best
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
