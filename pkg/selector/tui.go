package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"standex/pkg/catalog"
	"standex/pkg/writer"
)

// TUI is the interactive Selector. Each prompt is its own bubbletea program;
// the models below hold no state beyond one prompt.
type TUI struct {
	styles Styles
}

// NewTUI returns the interactive selector with default styling.
func NewTUI() *TUI {
	return &TUI{styles: DefaultStyles()}
}

// SelectEntries runs the multi-select prompt. Cancelling (q, esc, ctrl+c) or
// confirming with nothing ticked both return an empty selection with no
// error.
func (t *TUI) SelectEntries(entries []catalog.Entry) ([]string, error) {
	final, err := tea.NewProgram(newEntryModel(entries, t.styles)).Run()
	if err != nil {
		return nil, fmt.Errorf("selection prompt failed: %w", err)
	}
	m := final.(entryModel)
	if m.cancelled {
		return nil, nil
	}
	return m.selectedKeys(), nil
}

// SelectOutput runs the output-mode prompt. When exactly one entry was
// selected, saving to a custom file path is offered as well.
func (t *TUI) SelectOutput(selected []string) (Output, error) {
	final, err := tea.NewProgram(newOutputModel(len(selected) == 1, t.styles)).Run()
	if err != nil {
		return Output{}, fmt.Errorf("output prompt failed: %w", err)
	}
	m := final.(outputModel)
	if m.cancelled {
		return Output{}, ErrCancelled
	}
	return m.result, nil
}

// entryModel is the multi-select list over catalog entries.
type entryModel struct {
	entries   []catalog.Entry
	cursor    int
	ticked    map[int]bool
	cancelled bool
	done      bool
	styles    Styles
}

func newEntryModel(entries []catalog.Entry, styles Styles) entryModel {
	return entryModel{
		entries: entries,
		ticked:  make(map[int]bool, len(entries)),
		styles:  styles,
	}
}

func (m entryModel) Init() tea.Cmd { return nil }

func (m entryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case " ", "x":
		m.ticked[m.cursor] = !m.ticked[m.cursor]
	case "a":
		all := len(m.selectedKeys()) < len(m.entries)
		for i := range m.entries {
			m.ticked[i] = all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m entryModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Which standards do you want to fetch?"))
	b.WriteString("\n")
	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		box := "[ ]"
		label := e.DisplayName
		if m.ticked[i] {
			box = m.styles.Selected.Render("[x]")
			label = m.styles.Selected.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor, box, label, m.styles.Dim.Render(e.Description)))
	}
	b.WriteString(m.styles.Help.Render("space: toggle • a: all • enter: confirm • q: cancel"))
	b.WriteString("\n")
	return b.String()
}

// selectedKeys returns the ticked keys in catalog display order.
func (m entryModel) selectedKeys() []string {
	var keys []string
	for i, e := range m.entries {
		if m.ticked[i] {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// outputModel is the two-step destination prompt: pick a mode, then (for a
// custom-file save) type the target path.
type outputModel struct {
	options   []outputOption
	cursor    int
	askPath   bool
	pathInput textinput.Model
	result    Output
	cancelled bool
	done      bool
	styles    Styles
}

type outputOption struct {
	label      string
	mode       writer.Mode
	customPath bool
}

func newOutputModel(single bool, styles Styles) outputModel {
	options := []outputOption{
		{label: "Save to the standards folder", mode: writer.ModeSave},
		{label: "Display in the terminal", mode: writer.ModeDisplay},
		{label: "Save and display", mode: writer.ModeBoth},
	}
	if single {
		options = append(options, outputOption{
			label:      "Save to a custom file",
			mode:       writer.ModeSave,
			customPath: true,
		})
	}
	ti := textinput.New()
	ti.Placeholder = "path/to/output.md"
	ti.CharLimit = 256
	return outputModel{options: options, pathInput: ti, styles: styles}
}

func (m outputModel) Init() tea.Cmd { return nil }

func (m outputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.askPath {
		switch key.String() {
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return m, nil
			}
			m.result.TargetPath = path
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		opt := m.options[m.cursor]
		m.result.Mode = opt.mode
		if opt.customPath {
			m.askPath = true
			return m, m.pathInput.Focus()
		}
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m outputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	if m.askPath {
		b.WriteString(m.styles.Title.Render("Where should the file be saved?"))
		b.WriteString("\n")
		b.WriteString(m.pathInput.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter: confirm • esc: cancel"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.styles.Title.Render("What should happen with the fetched standards?"))
	b.WriteString("\n")
	for i, opt := range m.options {
		cursor := "  "
		label := opt.label
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			label = m.styles.Selected.Render(label)
		}
		b.WriteString(cursor + label + "\n")
	}
	b.WriteString(m.styles.Help.Render("enter: confirm • q: cancel"))
	b.WriteString("\n")
	return b.String()
}
