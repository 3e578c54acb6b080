package components

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

func sampleCalls(n int) []types.Call {
	calls := make([]types.Call, n)
	for i := range calls {
		calls[i] = types.Call{
			CallID:      fmt.Sprintf("c-%d", i),
			PhoneNumber: fmt.Sprintf("+1555000%04d", i),
			Status:      types.StatusCompleted,
		}
	}
	return calls
}

func TestCallsViewSelection(t *testing.T) {
	cv := NewCallsView()
	cv.SetCalls(sampleCalls(3))

	require.NotNil(t, cv.GetSelected())
	assert.Equal(t, "c-0", cv.GetSelected().CallID)

	cv.SelectNext()
	assert.Equal(t, "c-1", cv.GetSelected().CallID)

	cv.SelectLast()
	assert.Equal(t, "c-2", cv.GetSelected().CallID)

	// Bounds hold at either end
	cv.SelectNext()
	assert.Equal(t, "c-2", cv.GetSelected().CallID)

	cv.SelectFirst()
	cv.SelectPrevious()
	assert.Equal(t, "c-0", cv.GetSelected().CallID)
}

func TestCallsViewEmpty(t *testing.T) {
	cv := NewCallsView()

	assert.Nil(t, cv.GetSelected())
	assert.Equal(t, 0, cv.Count())

	cv.SelectNext()
	cv.SelectLast()
	assert.Nil(t, cv.GetSelected())
}

// TestSetCallsResetsSelection verifies that a new page cannot inherit a
// cursor pointing past its rows.
func TestSetCallsResetsSelection(t *testing.T) {
	cv := NewCallsView()
	cv.SetCalls(sampleCalls(5))
	cv.SelectLast()

	cv.SetCalls(sampleCalls(2))

	require.NotNil(t, cv.GetSelected())
	assert.Equal(t, "c-0", cv.GetSelected().CallID)
}

func TestHandleMouseClickSelectsRow(t *testing.T) {
	cv := NewCallsView()
	cv.SetSize(120, 30)
	cv.SetCalls(sampleCalls(5))

	// Border, padding and the header row sit above the first data row
	cv.HandleMouseClick(4)
	assert.Equal(t, "c-0", cv.GetSelected().CallID)

	cv.HandleMouseClick(6)
	assert.Equal(t, "c-2", cv.GetSelected().CallID)

	// Clicks above the table or past the rows change nothing
	cv.HandleMouseClick(2)
	assert.Equal(t, "c-2", cv.GetSelected().CallID)
	cv.HandleMouseClick(40)
	assert.Equal(t, "c-2", cv.GetSelected().CallID)
}

func TestAdjustOffsetKeepsSelectionVisible(t *testing.T) {
	cv := NewCallsView()
	cv.SetSize(120, 12)
	cv.SetCalls(sampleCalls(20))

	cv.SelectLast()
	assert.Equal(t, 19, cv.selected)
	assert.Equal(t, 14, cv.offset)

	cv.SelectFirst()
	assert.Equal(t, 0, cv.offset)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "a much ...", truncate("a much longer string", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "plain text", sanitize("plain text"))
	assert.Equal(t, "tab\tkept", sanitize("tab\tkept"))
	assert.Equal(t, "a b", sanitize("a\x1bb"))
	assert.Equal(t, "x?y", sanitize("x�y"))
}
