package controller

// compareCapacity bounds the comparison set. Toggling a fifth player is
// a silent no-op, a UX guard rather than an error.
const compareCapacity = 4

func (c *controller) ToggleCompare(playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, id := range c.compare {
		if id == playerID {
			c.compare = append(c.compare[:i], c.compare[i+1:]...)
			return
		}
	}
	if len(c.compare) < compareCapacity {
		c.compare = append(c.compare, playerID)
	}
}

func (c *controller) ClearCompare() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compare = nil
}

// ComparisonPlayers returns the current display list filtered to the
// selected ids. A selected player hidden by the active filters simply
// drops out of the result; the underlying selection keeps the id, so it
// reappears when the filters let it through again.
func (c *controller) ComparisonPlayers() []DisplayPlayer {
	list := c.Players()

	c.mu.Lock()
	selected := make(map[string]bool, len(c.compare))
	for _, id := range c.compare {
		selected[id] = true
	}
	c.mu.Unlock()

	result := make([]DisplayPlayer, 0, compareCapacity)
	for _, p := range list {
		if selected[p.ID] {
			result = append(result, p)
		}
	}
	return result
}
