// Package observability provides hooks for instrumenting the kinematics core.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about forward-kinematics passes and inverse-
// kinematics solves.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    // ... run application
//	}
//
// The kinematics packages call hooks to emit events:
//
//	observability.Solver().OnSolveStart(target)
//	// ... iterate ...
//	observability.Solver().OnSolveComplete(target, sweeps, distance, converged)
package observability

import "sync"

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from inverse-kinematics solves.
// Distances are in meters.
type SolverHooks interface {
	// OnSolveStart records the beginning of a solve for the given target link.
	OnSolveStart(target string)

	// OnSweep records the effector distance after one full chain sweep.
	OnSweep(target string, sweep int, distance float64)

	// OnSolveComplete records the end of a solve.
	OnSolveComplete(target string, sweeps int, distance float64, converged bool)
}

// =============================================================================
// Forward Pass Hooks
// =============================================================================

// ForwardHooks receives events from forward-kinematics passes.
type ForwardHooks interface {
	// OnForwardPass records one whole-tree forward pass over the given
	// number of links.
	OnForwardPass(links int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(string)                        {}
func (NoopSolverHooks) OnSweep(string, int, float64)               {}
func (NoopSolverHooks) OnSolveComplete(string, int, float64, bool) {}

// NoopForwardHooks is a no-op implementation of ForwardHooks.
type NoopForwardHooks struct{}

func (NoopForwardHooks) OnForwardPass(int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks  SolverHooks  = NoopSolverHooks{}
	forwardHooks ForwardHooks = NoopForwardHooks{}
	hooksMu      sync.RWMutex
)

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any solves.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetForwardHooks registers custom forward-pass hooks.
// This should be called once at application startup.
func SetForwardHooks(h ForwardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		forwardHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Forward returns the registered forward-pass hooks.
func Forward() ForwardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return forwardHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	forwardHooks = NoopForwardHooks{}
}
