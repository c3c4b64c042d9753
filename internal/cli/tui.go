package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/armlab/armature/pkg/kinematics"
	"github.com/armlab/armature/pkg/scene"
	"github.com/armlab/armature/pkg/sceneio"
)

// Jog step sizes. Rotational values are degrees, linear values millimeters;
// the same step reads naturally for both.
const (
	jogStepCoarse = 5.0
	jogStepFine   = 0.5
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// JogModel - Interactive joint nudging
// =============================================================================

// jogJoint addresses one joint in the flattened scene-wide list shown by the
// jog TUI.
type jogJoint struct {
	owner scene.LinkID
	joint *scene.Joint
}

// JogModel is the bubbletea model for interactively nudging joints.
// Every adjustment recomputes forward kinematics so the effector readout
// tracks the mechanism live.
type JogModel struct {
	Scene    *scene.Scene
	Output   string // file written on save
	Effector scene.LinkID

	joints []jogJoint
	cursor int
	world  kinematics.WorldState
	status string
}

// NewJogModel creates a jog model over all joints in the scene, in
// deterministic link order. Effector defaults to the deepest leaf.
func NewJogModel(s *scene.Scene, output string) JogModel {
	var joints []jogJoint
	for _, l := range s.Links() {
		for _, j := range l.Joints {
			joints = append(joints, jogJoint{owner: l.ID, joint: j})
		}
	}
	return JogModel{
		Scene:    s,
		Output:   output,
		Effector: deepestLeaf(s),
		joints:   joints,
		world:    kinematics.Compute(s),
	}
}

func (m JogModel) Init() tea.Cmd {
	return nil
}

func (m JogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.joints)-1 {
				m.cursor++
			}
		case "left":
			m.nudge(-jogStepCoarse)
		case "right":
			m.nudge(jogStepCoarse)
		case "shift+left":
			m.nudge(-jogStepFine)
		case "shift+right":
			m.nudge(jogStepFine)
		case "s":
			if m.Output == "" {
				m.status = StyleWarning.Render("no output file configured")
				break
			}
			if err := sceneio.ExportJSON(m.Scene, m.Output); err != nil {
				m.status = StyleWarning.Render("save failed: " + err.Error())
			} else {
				m.status = StyleSuccess.Render("saved " + m.Output)
			}
		}
	}
	return m, nil
}

// nudge shifts the selected joint by delta, clamped into its limits, and
// refreshes the world state.
func (m *JogModel) nudge(delta float64) {
	if len(m.joints) == 0 {
		return
	}
	j := m.joints[m.cursor].joint
	j.SetValue(j.Value + delta)
	m.world = kinematics.Compute(m.Scene)
	m.status = ""
}

func (m JogModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Jog Joints"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ nudge ±5  shift+←/→ fine ±0.5  s save  q quit"))
	b.WriteString("\n\n")

	if len(m.joints) == 0 {
		b.WriteString(listDimStyle.Render("  scene has no joints"))
		b.WriteString("\n")
		return b.String()
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(m.joints))
	for i, jj := range m.joints {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		j := jj.joint
		unit := "deg"
		if j.Kind == scene.Linear {
			unit = "mm"
		}
		rows = append(rows, []string{
			cursor,
			j.Name,
			fmt.Sprintf("%s %s", j.Kind, j.Axis),
			fmt.Sprintf("%.1f %s", j.Value, unit),
			fmt.Sprintf("[%.0f, %.0f]", j.Min, j.Max),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Joint", "Kind", "Value", "Limits").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return StyleValue
			}
			return StyleDim
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if p, ok := m.world[m.Effector]; ok {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			listDimStyle.Render("effector "+string(m.Effector)+":"),
			StyleHighlight.Render(fmt.Sprintf("(%.4f, %.4f, %.4f)",
				p.Origin.X(), p.Origin.Y(), p.Origin.Z()))))
	}
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}

	return b.String()
}
