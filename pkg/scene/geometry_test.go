package scene

import "testing"

func TestGeometry_Bounds(t *testing.T) {
	tests := []struct {
		name string
		geom Geometry
		want Bounds
	}{
		{
			name: "box radial from larger horizontal extent",
			geom: NewBox(0.4, 0.2, 1.0),
			want: Bounds{Width: 0.4, Depth: 0.2, Height: 1.0, Radial: 0.2},
		},
		{
			name: "cylinder",
			geom: NewCylinder(0.1, 0.5),
			want: Bounds{Width: 0.2, Depth: 0.2, Height: 0.5, Radial: 0.1},
		},
		{
			name: "cone",
			geom: NewCone(0.25, 0.6),
			want: Bounds{Width: 0.5, Depth: 0.5, Height: 0.6, Radial: 0.25},
		},
		{
			name: "sphere",
			geom: NewSphere(0.3),
			want: Bounds{Width: 0.6, Depth: 0.6, Height: 0.6, Radial: 0.3},
		},
		{
			name: "capsule height includes both caps",
			geom: NewCapsule(0.05, 0.4),
			want: Bounds{Width: 0.1, Depth: 0.1, Height: 0.5, Radial: 0.05},
		},
		{
			name: "mesh scaled by scale and unit scale",
			geom: Geometry{Kind: KindMesh, Mesh: &MeshDims{
				Scale:     2,
				UnitScale: 0.5,
				Bounds:    Bounds{Width: 1, Depth: 2, Height: 3, Radial: 1},
			}},
			want: Bounds{Width: 1, Depth: 2, Height: 3, Radial: 1},
		},
		{
			name: "missing payload falls back",
			geom: Geometry{Kind: KindBox},
			want: fallbackBounds,
		},
		{
			name: "unknown kind falls back",
			geom: Geometry{Kind: GeometryKind(99)},
			want: fallbackBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geom.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
