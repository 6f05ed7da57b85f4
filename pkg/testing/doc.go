// Package testing provides helpers for deterministic widget tests.
//
// Import it under an alias to avoid shadowing the standard library:
//
//	import slimytest "github.com/go-drift/slimy/pkg/testing"
//
//	clock := slimytest.NewFakeClock()
//	prev := animation.SetClock(clock)
//	defer animation.SetClock(prev)
//	clock.Advance(750 * time.Millisecond)
package testing
