package observability

import "testing"

type recordingSolverHooks struct {
	starts, sweeps, completes int
}

func (h *recordingSolverHooks) OnSolveStart(string)                        { h.starts++ }
func (h *recordingSolverHooks) OnSweep(string, int, float64)               { h.sweeps++ }
func (h *recordingSolverHooks) OnSolveComplete(string, int, float64, bool) { h.completes++ }

func TestSetSolverHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingSolverHooks{}
	SetSolverHooks(h)

	Solver().OnSolveStart("tip")
	Solver().OnSweep("tip", 1, 0.5)
	Solver().OnSolveComplete("tip", 1, 0.001, true)

	if h.starts != 1 || h.sweeps != 1 || h.completes != 1 {
		t.Errorf("events = %d/%d/%d, want 1/1/1", h.starts, h.sweeps, h.completes)
	}
}

func TestSetSolverHooks_NilIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetSolverHooks(nil)
	if Solver() == nil {
		t.Error("Solver() = nil after registering nil hooks")
	}
}

func TestReset_RestoresNoops(t *testing.T) {
	h := &recordingSolverHooks{}
	SetSolverHooks(h)
	Reset()

	Solver().OnSolveStart("tip")
	if h.starts != 0 {
		t.Errorf("custom hooks still active after Reset: %d starts", h.starts)
	}
}
