package console

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingInitializeSeedsBannerAndPrompt(t *testing.T) {
	r := NewRing(DefaultCapacity)
	require.NoError(t, r.Initialize(DefaultBanner, DefaultPrompt))

	assert.Equal(t, []string{"READY", "> "}, r.Lines())
	assert.Equal(t, 0, r.Line(0).PromptLen())
	assert.Equal(t, len(DefaultPrompt), r.Active().PromptLen())
}

func TestRingInitializeDiscardsHistory(t *testing.T) {
	r := NewRing(4)
	for i := 0; i < 10; i++ {
		require.NoError(t, r.StartLine())
		require.NoError(t, r.AppendString(fmt.Sprint(i)))
	}
	require.NoError(t, r.Initialize("hello", "$ "))
	assert.Equal(t, []string{"hello", "$ "}, r.Lines())
}

func TestRingFirstStartLineFillsCurrentSlot(t *testing.T) {
	r := NewRing(8)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Active())

	require.NoError(t, r.StartLine())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, uint64(0), r.Evicted())
}

func TestRingAppendTargetsActiveLine(t *testing.T) {
	r := NewRing(8)
	require.NoError(t, r.Initialize(DefaultBanner, DefaultPrompt))
	require.NoError(t, r.AppendRune('h'))
	require.NoError(t, r.AppendString("ello"))

	assert.Equal(t, []string{"READY", "> hello"}, r.Lines())
}

func TestRingAppendOnEmptyStartsLine(t *testing.T) {
	r := NewRing(8)
	require.NoError(t, r.AppendString("x"))
	assert.Equal(t, []string{"x"}, r.Lines())
}

func TestRingRetainsMostRecentFIFO(t *testing.T) {
	r := NewRing(DefaultCapacity)
	total := DefaultCapacity*2 + 37
	for i := 0; i < total; i++ {
		require.NoError(t, r.StartLine())
		require.NoError(t, r.AppendString(fmt.Sprint(i)))
		require.LessOrEqual(t, r.Len(), DefaultCapacity)

		lines := r.Lines()
		oldest := max(0, i+1-DefaultCapacity)
		require.Equal(t, fmt.Sprint(oldest), lines[0], "oldest retained after %d", i)
		require.Equal(t, fmt.Sprint(i), lines[len(lines)-1])
	}

	assert.Equal(t, DefaultCapacity, r.Len())
	assert.Equal(t, uint64(total-DefaultCapacity), r.Evicted())
	for i, s := range r.Lines() {
		assert.Equal(t, fmt.Sprint(total-DefaultCapacity+i), s)
	}
}

func TestRingCapacityOne(t *testing.T) {
	r := NewRing(1)
	require.NoError(t, r.StartLine("a"))
	require.NoError(t, r.StartLine("b"))
	assert.Equal(t, []string{"b"}, r.Lines())
	assert.Equal(t, 1, r.Len())
}

func TestRingNonPositiveCapacityUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewRing(0).Capacity())
	assert.Equal(t, DefaultCapacity, NewRing(-3).Capacity())
}

func TestRingAllIsRestartableAndStoppable(t *testing.T) {
	r := NewRing(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, r.StartLine(s))
	}

	first := r.Lines()
	second := r.Lines()
	assert.Equal(t, []string{"b", "c", "d"}, first)
	assert.Equal(t, first, second)

	count := 0
	for range r.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestRingLineIndexing(t *testing.T) {
	r := NewRing(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, r.StartLine(s))
	}
	assert.Equal(t, "c", r.Line(0).String())
	assert.Equal(t, "e", r.Line(2).String())
	assert.Nil(t, r.Line(3))
	assert.Nil(t, r.Line(-1))
}

// Backspace removes the last rune of the active line and stops at the prompt.
// This resolves the undefined delete behavior as: never cross the prompt, never merge lines.
func TestRingDeleteLastRespectsPrompt(t *testing.T) {
	r := NewRing(8)
	require.NoError(t, r.Initialize(DefaultBanner, DefaultPrompt))
	require.NoError(t, r.AppendString("ab"))

	assert.True(t, r.DeleteLast())
	assert.True(t, r.DeleteLast())
	assert.False(t, r.DeleteLast())
	assert.Equal(t, []string{"READY", "> "}, r.Lines())
}

func TestRingDeleteLastOnEmpty(t *testing.T) {
	assert.False(t, NewRing(2).DeleteLast())
}
