package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabsNavigation(t *testing.T) {
	tabs := NewTabs([]Tab{{Label: "A"}, {Label: "B"}, {Label: "C"}})
	assert.Equal(t, 0, tabs.GetActive())
	assert.Equal(t, 3, tabs.Count())

	tabs.Next()
	assert.Equal(t, 1, tabs.GetActive())

	// Wraps both ways
	tabs.Next()
	tabs.Next()
	assert.Equal(t, 0, tabs.GetActive())
	tabs.Previous()
	assert.Equal(t, 2, tabs.GetActive())
}

func TestTabsSetActiveBounds(t *testing.T) {
	tabs := NewTabs([]Tab{{Label: "A"}, {Label: "B"}})

	tabs.SetActive(1)
	assert.Equal(t, 1, tabs.GetActive())

	// Out-of-range indices are ignored
	tabs.SetActive(5)
	assert.Equal(t, 1, tabs.GetActive())
	tabs.SetActive(-1)
	assert.Equal(t, 1, tabs.GetActive())
}

// TestGetTabAtX exercises the click hit test with fixed-width labels: each
// tab spans its label plus icon width plus 8 columns of padding and
// border, with a one-column gap between tabs.
func TestGetTabAtX(t *testing.T) {
	tabs := NewTabs([]Tab{
		{Label: "Calls", Icon: "A"},     // "A Calls" = 7 wide -> spans [0, 15)
		{Label: "Dashboard", Icon: "B"}, // "B Dashboard" = 11 wide -> spans [16, 35)
	})

	assert.Equal(t, 0, tabs.GetTabAtX(0))
	assert.Equal(t, 0, tabs.GetTabAtX(14))
	assert.Equal(t, -1, tabs.GetTabAtX(15)) // the gap column
	assert.Equal(t, 1, tabs.GetTabAtX(16))
	assert.Equal(t, 1, tabs.GetTabAtX(34))
	assert.Equal(t, -1, tabs.GetTabAtX(35))
	assert.Equal(t, -1, tabs.GetTabAtX(200))
}
