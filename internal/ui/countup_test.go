package ui

import (
	"math"
	"testing"
)

func drain(t *testing.T, c *countUp) {
	t.Helper()
	for i := 0; i < countUpFrames*2 && !c.Done(); i++ {
		c.Update(countTickMsg{gen: c.gen})
	}
	if !c.Done() {
		t.Fatal("animation never settled")
	}
}

func TestCountUpReachesTarget(t *testing.T) {
	var c countUp
	if cmd := c.Set(100); cmd == nil {
		t.Fatal("Set should schedule a tick")
	}
	drain(t, &c)
	if got := c.Value(); got != 100 {
		t.Fatalf("settled value = %v, want 100", got)
	}
}

func TestCountUpEasesMonotonically(t *testing.T) {
	var c countUp
	c.Set(100)
	prev := c.Value()
	for !c.Done() {
		c.Update(countTickMsg{gen: c.gen})
		v := c.Value()
		if v < prev-1e-9 {
			t.Fatalf("value went backwards: %v -> %v", prev, v)
		}
		prev = v
	}
	// Ease-out front-loads the motion: past halfway well before half the frames.
	var c2 countUp
	c2.Set(100)
	for i := 0; i < countUpFrames/2; i++ {
		c2.Update(countTickMsg{gen: c2.gen})
	}
	if c2.Value() < 50 {
		t.Fatalf("ease-out too slow: %v at half duration", c2.Value())
	}
}

func TestCountUpStaleGenerationIgnored(t *testing.T) {
	var c countUp
	c.Set(100)
	old := c.gen
	c.Set(40) // retarget mid-flight

	before := c.Value()
	if cmd := c.Update(countTickMsg{gen: old}); cmd != nil {
		t.Fatal("stale tick should not reschedule")
	}
	if c.Value() != before {
		t.Fatal("stale tick advanced the animation")
	}

	drain(t, &c)
	if got := c.Value(); math.Abs(got-40) > 1e-9 {
		t.Fatalf("settled value = %v, want 40", got)
	}
}

func TestCountUpRetargetStartsFromDisplayedValue(t *testing.T) {
	var c countUp
	c.Set(100)
	for i := 0; i < 5; i++ {
		c.Update(countTickMsg{gen: c.gen})
	}
	mid := c.Value()
	if mid <= 0 || mid >= 100 {
		t.Fatalf("mid-flight value = %v", mid)
	}

	c.Set(0)
	if got := c.Value(); math.Abs(got-mid) > 1e-9 {
		t.Fatalf("retarget reset displayed value to %v, want %v", got, mid)
	}
}

func TestCountUpNoTickWhenAlreadyAtTarget(t *testing.T) {
	var c countUp
	c.Set(100)
	drain(t, &c)
	if cmd := c.Set(100); cmd != nil {
		t.Fatal("settled value retargeted to itself should not animate")
	}
}
