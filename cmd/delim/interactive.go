package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typerow/typerow/codec"
	"github.com/typerow/typerow/delimited"
	"github.com/typerow/typerow/schemafile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const pageSize = 20

type rowError struct {
	line int
	err  error
}

type browseModel struct {
	err        error
	schemaPath string
	inPath     string
	cfg        delimited.Config
	limit      int
	names      []string
	records    []codec.Record
	rowErrs    []rowError
	filter     textinput.Model
	filtered   []int
	selected   int
	offset     int
	state      browseState
}

type browseState int

const (
	stateBrowse browseState = iota
	stateFilter
	stateDetail
	stateErrors
)

func newBrowseModel(schemaPath, inPath string, cfg delimited.Config, limit int) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "substring"
	ti.Prompt = "filter: "
	ti.Width = 40
	return &browseModel{
		schemaPath: schemaPath,
		inPath:     inPath,
		cfg:        cfg,
		limit:      limit,
		filter:     ti,
		state:      stateBrowse,
	}
}

type loadedMsg struct {
	err     error
	names   []string
	records []codec.Record
	rowErrs []rowError
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadRecords
}

func (m *browseModel) loadRecords() tea.Msg {
	shape, err := schemafile.Load(m.schemaPath)
	if err != nil {
		return loadedMsg{err: err}
	}
	schema, err := codec.NewCompiler().Compile(shape)
	if err != nil {
		return loadedMsg{err: err}
	}

	in, closeIn, err := openInput(m.inPath)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer closeIn()

	reader, err := delimited.NewReader(in, schema, m.cfg)
	if err != nil {
		return loadedMsg{err: err}
	}

	var records []codec.Record
	var rowErrs []rowError
	for rec, err := range reader.Records() {
		if err != nil {
			rowErrs = append(rowErrs, rowError{line: reader.Line(), err: err})
			continue
		}
		records = append(records, rec)
		if m.limit > 0 && len(records) >= m.limit {
			break
		}
	}

	return loadedMsg{names: schema.Names(), records: records, rowErrs: rowErrs}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter":
				m.applyFilter()
				m.state = stateBrowse
			case "esc":
				m.filter.SetValue("")
				m.applyFilter()
				m.state = stateBrowse
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}

		case "pgup":
			m.selected = max(0, m.selected-pageSize)

		case "pgdown":
			m.selected = min(len(m.filtered)-1, m.selected+pageSize)

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "e":
			if m.state == stateBrowse && len(m.rowErrs) > 0 {
				m.state = stateErrors
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.filtered) > 0 {
					m.state = stateDetail
				}
			case stateDetail, stateErrors:
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateDetail || m.state == stateErrors {
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.names = msg.names
		m.records = msg.records
		m.rowErrs = msg.rowErrs
		m.applyFilter()
	}

	return m, nil
}

// applyFilter recomputes the visible record indexes from the filter text.
// Matching is a case-insensitive substring check over the rendered row.
func (m *browseModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for i, rec := range m.records {
		if query == "" || strings.Contains(strings.ToLower(m.renderRow(rec)), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m *browseModel) renderRow(rec codec.Record) string {
	parts := make([]string, len(rec))
	for i, v := range rec {
		if v == nil {
			parts[i] = "-"
			continue
		}
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, " | ")
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.names == nil {
		return "Loading records..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Record Browser"))
	b.WriteString(" ")
	if m.inPath != "" {
		b.WriteString(m.inPath)
	} else {
		b.WriteString("(stdin)")
	}
	b.WriteString(fmt.Sprintf("  %d/%d records", len(m.filtered), len(m.records)))
	if len(m.rowErrs) > 0 {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d rejected", len(m.rowErrs))))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateDetail:
		m.viewDetail(&b)
	case stateErrors:
		m.viewErrors(&b)
	default:
		m.viewList(&b)
	}

	return b.String()
}

func (m *browseModel) viewList(b *strings.Builder) {
	b.WriteString(headerStyle.Render(strings.Join(m.names, " | ")))
	b.WriteString("\n")

	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+pageSize {
		m.offset = m.selected - pageSize + 1
	}

	end := min(m.offset+pageSize, len(m.filtered))
	for i := m.offset; i < end; i++ {
		row := m.renderRow(m.records[m.filtered[i]])
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateFilter {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc clear"))
	} else {
		help := "↑/↓ select • enter detail • / filter • q quit"
		if len(m.rowErrs) > 0 {
			help = "↑/↓ select • enter detail • / filter • e errors • q quit"
		}
		b.WriteString(helpStyle.Render(help))
	}
}

func (m *browseModel) viewDetail(b *strings.Builder) {
	rec := m.records[m.filtered[m.selected]]
	width := 0
	for _, n := range m.names {
		width = max(width, len(n))
	}
	for i, n := range m.names {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%*s", width, n)))
		b.WriteString("  ")
		if rec[i] == nil {
			b.WriteString(absentStyle.Render("<absent>"))
		} else {
			b.WriteString(fmt.Sprintf("%v", rec[i]))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter back • q quit"))
}

func (m *browseModel) viewErrors(b *strings.Builder) {
	b.WriteString("Rejected lines:\n\n")
	for _, re := range m.rowErrs {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  line %d", re.line)))
		b.WriteString(fmt.Sprintf("  %v\n", re.err))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter back • q quit"))
}

func runInteractive(schemaPath, inPath string, cfg delimited.Config, limit int) error {
	p := tea.NewProgram(newBrowseModel(schemaPath, inPath, cfg, limit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
