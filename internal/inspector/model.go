package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numfield/internal/logging"
	"github.com/agbru/numfield/internal/metrics"
	"github.com/agbru/numfield/internal/numfmt"
)

// labelColumnWidth is the fixed width of the label column; value text
// starts aligned regardless of label length.
const labelColumnWidth = 14

// Model is the root bubbletea model of the inspector panel.
type Model struct {
	fields []Field
	cursor int

	opts      numfmt.Options
	keys      KeyMap
	styles    Styles
	help      help.Model
	logger    logging.Logger
	collector *metrics.Collector

	width    int
	status   string
	statusOK bool
	quitting bool
}

// New creates an inspector over the given fields.
func New(fields []Field, opts numfmt.Options, logger logging.Logger, collector *metrics.Collector) Model {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return Model{
		fields:    fields,
		opts:      opts,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		logger:    logger,
		collector: collector,
		statusOK:  true,
	}
}

// Fields exposes the bound fields, mainly for tests and for reading values
// back out after the program ends.
func (m Model) Fields() []Field { return m.fields }

// Init implements tea.Model. The inspector is purely reactive.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if len(m.fields) == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		if m.current().Editing() {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) current() *Field {
	return &m.fields[m.cursor]
}

// updateBrowsing handles keys while no field is being edited.
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		m.current().StartEdit(m.opts)
		m.status = ""
	}
	return m, nil
}

// updateEditing handles keys while the current field owns the input.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.current()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		f.CancelEdit()
		m.status = "edit cancelled"
		m.statusOK = true
	case key.Matches(msg, m.keys.Commit):
		status, parsed := f.Commit(m.opts)
		m.setCommitStatus(f.Label, status, parsed)
	default:
		f.HandleKey(msg, m.opts)
	}
	return m, nil
}

func (m *Model) setCommitStatus(label string, status numfmt.ParseStatus, parsed bool) {
	if m.collector != nil && parsed {
		m.collector.ObserveParse(status)
	}
	if !parsed {
		m.status = "unchanged"
		m.statusOK = true
		return
	}

	m.logger.Info("field committed",
		logging.String("field", label),
		logging.String("status", status.String()))

	switch status {
	case numfmt.ParseMalformed:
		m.status = fmt.Sprintf("%s: not a number, value kept", label)
		m.statusOK = false
	case numfmt.ParseRejected:
		m.status = fmt.Sprintf("%s: out of range, value kept", label)
		m.statusOK = false
	case numfmt.ParseClamped:
		m.status = fmt.Sprintf("%s: clamped to range", label)
		m.statusOK = false
	default:
		m.status = fmt.Sprintf("%s updated", label)
		m.statusOK = true
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("numfield inspector"))
	b.WriteString("\n")

	var rows []string
	for i := range m.fields {
		rows = append(rows, m.renderField(i))
	}
	b.WriteString(m.styles.Panel.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.Status
		if !m.statusOK {
			style = m.styles.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// renderField renders one row: padded label, then either the live edit
// buffer with a cursor mark or the formatted value with its abbreviation.
func (m Model) renderField(i int) string {
	f := &m.fields[i]

	labelStyle := m.styles.Label
	if i == m.cursor {
		labelStyle = m.styles.LabelFocused
	}
	label := labelStyle.Render(padRight(f.Label, labelColumnWidth))

	if f.Editing() {
		text, cursor := f.EditText()
		// A pipe cursor keeps the row legible on terminals without
		// cursor styling.
		display := text[:cursor] + "|" + text[cursor:]
		return lipgloss.JoinHorizontal(lipgloss.Top, label, m.styles.InputFocused.Render(display))
	}

	res := numfmt.Format(f.Value(), m.opts)
	if m.collector != nil {
		m.collector.ObserveFormat()
	}
	row := m.styles.Value.Render(res.Display)
	if res.Abbrev != "" {
		row += " " + m.styles.Abbrev.Render("("+res.Abbrev+")")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, row)
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
