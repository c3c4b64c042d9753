package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/armlab/armature/pkg/kinematics"
)

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Solver.MaxIterations != kinematics.DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", cfg.Solver.MaxIterations, kinematics.DefaultMaxIterations)
	}
	if cfg.Solver.Tolerance != kinematics.DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", cfg.Solver.Tolerance, kinematics.DefaultTolerance)
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Render.Format)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadConfig(missing explicit file) = nil, want error")
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armature.toml")
	content := `
[solver]
max_iterations = 50

[render]
format = "dot"
detailed = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Solver.MaxIterations != 50 {
		t.Errorf("MaxIterations = %d, want 50", cfg.Solver.MaxIterations)
	}
	// Unset fields keep their defaults.
	if cfg.Solver.Tolerance != kinematics.DefaultTolerance {
		t.Errorf("Tolerance = %v, want default %v", cfg.Solver.Tolerance, kinematics.DefaultTolerance)
	}
	if cfg.Render.Format != "dot" || !cfg.Render.Detailed {
		t.Errorf("Render = %+v, want format dot, detailed true", cfg.Render)
	}
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[solver\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig(malformed) = nil, want error")
	}
}
