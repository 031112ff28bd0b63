package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"standex/pkg/catalog"
	"standex/pkg/writer"
)

func press(t *testing.T, m entryModel, msg tea.Msg) entryModel {
	t.Helper()
	res, _ := m.Update(msg)
	return res.(entryModel)
}

func pressOutput(t *testing.T, m outputModel, msg tea.Msg) outputModel {
	t.Helper()
	res, _ := m.Update(msg)
	return res.(outputModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEntryModelToggleAndConfirm(t *testing.T) {
	m := newEntryModel(catalog.Entries(), DefaultStyles())

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}) // tick "coding"
	m = press(t, m, keyRunes("j"))
	m = press(t, m, keyRunes("j")) // cursor on "seo"
	m = press(t, m, keyRunes("x")) // tick it
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.done)
	assert.Equal(t, []string{"coding", "seo"}, m.selectedKeys(),
		"keys come back in catalog display order")
}

func TestEntryModelToggleOff(t *testing.T) {
	m := newEntryModel(catalog.Entries(), DefaultStyles())
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, m.selectedKeys())
}

func TestEntryModelSelectAll(t *testing.T) {
	m := newEntryModel(catalog.Entries(), DefaultStyles())
	m = press(t, m, keyRunes("a"))
	assert.Len(t, m.selectedKeys(), len(catalog.Entries()))

	// Second press clears everything.
	m = press(t, m, keyRunes("a"))
	assert.Empty(t, m.selectedKeys())
}

func TestEntryModelCursorStaysInBounds(t *testing.T) {
	m := newEntryModel(catalog.Entries(), DefaultStyles())
	m = press(t, m, keyRunes("k"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < len(catalog.Entries())+3; i++ {
		m = press(t, m, keyRunes("j"))
	}
	assert.Equal(t, len(catalog.Entries())-1, m.cursor)
}

func TestEntryModelCancel(t *testing.T) {
	m := newEntryModel(catalog.Entries(), DefaultStyles())
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.cancelled)
}

func TestEntryModelViewListsEntries(t *testing.T) {
	m := newEntryModel(catalog.Entries(), DefaultStyles())
	view := m.View()
	for _, e := range catalog.Entries() {
		assert.Contains(t, view, e.DisplayName)
	}
}

func TestOutputModelChoosesDisplay(t *testing.T) {
	m := newOutputModel(false, DefaultStyles())
	m = pressOutput(t, m, keyRunes("j"))
	m = pressOutput(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.done)
	assert.Equal(t, writer.ModeDisplay, m.result.Mode)
}

func TestOutputModelOffersCustomPathOnlyForSingleSelection(t *testing.T) {
	assert.Len(t, newOutputModel(false, DefaultStyles()).options, 3)
	assert.Len(t, newOutputModel(true, DefaultStyles()).options, 4)
}

func TestOutputModelCustomPathFlow(t *testing.T) {
	m := newOutputModel(true, DefaultStyles())
	for i := 0; i < 3; i++ {
		m = pressOutput(t, m, keyRunes("j"))
	}
	m = pressOutput(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.askPath, "custom file choice should open the path prompt")

	m = pressOutput(t, m, keyRunes("notes.md"))
	m = pressOutput(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.done)
	assert.Equal(t, writer.ModeSave, m.result.Mode)
	assert.Equal(t, "notes.md", m.result.TargetPath)
}

func TestOutputModelEmptyPathIsNotAccepted(t *testing.T) {
	m := newOutputModel(true, DefaultStyles())
	for i := 0; i < 3; i++ {
		m = pressOutput(t, m, keyRunes("j"))
	}
	m = pressOutput(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressOutput(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // nothing typed yet
	assert.False(t, m.done)
}

func TestOutputModelCancelSurfaces(t *testing.T) {
	m := newOutputModel(false, DefaultStyles())
	m = pressOutput(t, m, keyRunes("q"))
	assert.True(t, m.cancelled)
}
