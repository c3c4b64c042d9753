package dot

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/scene"
)

func buildTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()

	base := &scene.Link{ID: "base", Name: "base", Geometry: scene.NewCylinder(0.15, 0.1)}
	if err := s.AddLink("", base); err != nil {
		t.Fatalf("AddLink(base): %v", err)
	}
	waist := scene.NewRotational("waist")
	waist.SetValue(30)
	if _, err := s.AddJoint("base", waist); err != nil {
		t.Fatalf("AddJoint(waist): %v", err)
	}

	arm := &scene.Link{
		ID:         "arm",
		Name:       "upper arm",
		Geometry:   scene.NewBox(0.08, 0.08, 0.4),
		BaseOffset: mgl64.Vec3{0, 0, 0.1},
	}
	if err := s.AddLink("base", arm); err != nil {
		t.Fatalf("AddLink(arm): %v", err)
	}
	return s
}

func TestToDOT_ContainsNodesAndEdges(t *testing.T) {
	s := buildTestScene(t)
	dot := ToDOT(s, Options{})

	for _, want := range []string{
		"digraph G {",
		`"base"`,
		`"arm"`,
		`"base" -> "arm";`,
		"waist: 30.0 deg",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_DetailedIncludesLimits(t *testing.T) {
	s := buildTestScene(t)
	dot := ToDOT(s, Options{Detailed: true})

	if !strings.Contains(dot, "[-90, 90]") {
		t.Errorf("detailed DOT output missing joint limits:\n%s", dot)
	}
	if !strings.Contains(dot, "cylinder") {
		t.Errorf("detailed DOT output missing geometry kind:\n%s", dot)
	}
}

func TestToDOT_ArticulatedLinksHighlighted(t *testing.T) {
	s := buildTestScene(t)
	dot := ToDOT(s, Options{})

	if !strings.Contains(dot, "fillcolor=lightyellow") {
		t.Errorf("jointed link not highlighted:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="3.5 4.5 100.25 200.75">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.25 200.75"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100"`) || !strings.Contains(out, `height="201"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
}

func TestNormalizeViewBox_NoMatchPassthrough(t *testing.T) {
	in := []byte("<svg>plain</svg>")
	if got := string(normalizeViewBox(in)); got != string(in) {
		t.Errorf("passthrough changed input: %s", got)
	}
}
