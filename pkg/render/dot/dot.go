// Package dot renders mechanism scenes as Graphviz node-link diagrams.
//
// The tree structure maps directly onto a top-to-bottom digraph: one node per
// link, one edge per parent/child relation. Joint state is folded into the
// node labels so a single diagram shows both topology and pose.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/armlab/armature/pkg/scene"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes geometry dimensions and joint limits in node labels.
	// When false, only link names and joint values are shown.
	Detailed bool
}

// ToDOT converts a scene to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Links carrying joints are rendered with a light fill to distinguish
// articulated links from static ones.
func ToDOT(s *scene.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, l := range s.Links() {
		label := fmtLabel(l, opts.Detailed)
		attrs := fmtAttrs(l, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", string(l.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, l := range s.Links() {
		if l.Parent != "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", string(l.Parent), string(l.ID))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(l *scene.Link, detailed bool) string {
	name := l.Name
	if name == "" {
		name = string(l.ID)
	}

	parts := []string{name}
	if detailed {
		parts = append(parts, fmtGeometry(l.Geometry))
	}
	for _, j := range l.Joints {
		parts = append(parts, fmtJoint(j, detailed))
	}

	return strings.Join(parts, "\n")
}

func fmtGeometry(g scene.Geometry) string {
	b := g.Bounds()
	return fmt.Sprintf("%s %.2f x %.2f x %.2f", g.Kind, b.Width, b.Depth, b.Height)
}

func fmtJoint(j *scene.Joint, detailed bool) string {
	unit := "deg"
	if j.Kind == scene.Linear {
		unit = "mm"
	}
	if !detailed {
		return fmt.Sprintf("%s: %.1f %s", j.Name, j.Value, unit)
	}
	return fmt.Sprintf("%s (%s %s): %.1f %s [%.0f, %.0f]",
		j.Name, j.Kind, j.Axis, j.Value, unit, j.Min, j.Max)
}

func fmtAttrs(l *scene.Link, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if len(l.Joints) > 0 {
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at the
// origin, which keeps downstream embedding (browsers, documentation tooling)
// from clipping the diagram.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
