package cli

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []assignment
		wantErr bool
	}{
		{
			name: "single",
			args: []string{"waist=45"},
			want: []assignment{{name: "waist", value: 45}},
		},
		{
			name: "multiple with whitespace and negatives",
			args: []string{"waist = -30.5", "slide=100"},
			want: []assignment{{name: "waist", value: -30.5}, {name: "slide", value: 100}},
		},
		{
			name:    "missing equals",
			args:    []string{"waist45"},
			wantErr: true,
		},
		{
			name:    "empty name",
			args:    []string{"=45"},
			wantErr: true,
		},
		{
			name:    "non-numeric value",
			args:    []string{"waist=lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssignments(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAssignments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseAssignments() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("assignment[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    mgl64.Vec3
		wantErr bool
	}{
		{"plain", "1,2,3", mgl64.Vec3{1, 2, 3}, false},
		{"whitespace and negatives", " -0.5, 1.25 ,0 ", mgl64.Vec3{-0.5, 1.25, 0}, false},
		{"too few components", "1,2", mgl64.Vec3{}, true},
		{"too many components", "1,2,3,4", mgl64.Vec3{}, true},
		{"non-numeric", "1,2,three", mgl64.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVec3(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseVec3(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		ext    string
		want   string
	}{
		{"explicit output wins", "out.svg", "scene.json", "svg", "out.svg"},
		{"derived from input", "", "scene.json", "svg", "scene.svg"},
		{"derived dot", "", "arm.json", "dot", "arm.dot"},
		{"input without extension", "", "scene", "svg", "scene.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.ext); got != tt.want {
				t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.output, tt.input, tt.ext, got, tt.want)
			}
		})
	}
}
