package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	countUpFrames   = 20
	countUpInterval = 30 * time.Millisecond
)

type countTickMsg struct{ gen int }

// countUp animates a number from its current displayed value to a new
// target with a cubic ease-out curve. Each retarget bumps the generation so
// ticks from a superseded animation are dropped.
type countUp struct {
	from, to float64
	frame    int
	gen      int
}

// Set retargets the animation starting from the currently displayed value.
// Returns nil when the target already matches, so idle values don't tick.
func (c *countUp) Set(target float64) tea.Cmd {
	if target == c.to && c.frame >= countUpFrames {
		return nil
	}
	c.from = c.Value()
	c.to = target
	c.frame = 0
	c.gen++
	return c.tick()
}

func (c *countUp) tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(countUpInterval, func(time.Time) tea.Msg {
		return countTickMsg{gen: gen}
	})
}

// Update advances one frame. Stale-generation ticks are ignored.
func (c *countUp) Update(msg tea.Msg) tea.Cmd {
	t, ok := msg.(countTickMsg)
	if !ok || t.gen != c.gen || c.frame >= countUpFrames {
		return nil
	}
	c.frame++
	if c.frame >= countUpFrames {
		return nil
	}
	return c.tick()
}

// Value is the currently displayed number.
func (c *countUp) Value() float64 {
	if c.frame >= countUpFrames {
		return c.to
	}
	t := float64(c.frame) / float64(countUpFrames)
	eased := 1 - (1-t)*(1-t)*(1-t)
	return c.from + (c.to-c.from)*eased
}

// Done reports whether the animation has settled on its target.
func (c *countUp) Done() bool { return c.frame >= countUpFrames }
