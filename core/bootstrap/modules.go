package bootstrap

import "context"

// Warmup is a named startup step executed by Run after the logger is ready.
// Bots use warmups to validate static reference data and preheat their
// in-memory stores.
type Warmup struct {
	Name string
	Run  func(ctx context.Context) error
}

// WarmupFunc adapts a bare function to a named Warmup.
func WarmupFunc(name string, fn func(ctx context.Context) error) Warmup {
	return Warmup{Name: name, Run: fn}
}
