// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package tui implements an interactive terminal viewer for a document.
//
// The viewer has three tabs. The Input tab holds an editable copy of the
// source text, which is validated again after every edit; the Tree and
// Formatted tabs show the most recent valid document.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jview/clipboard"
	"github.com/creachadair/jview/document"
	"github.com/creachadair/jview/internal/config"
	"github.com/creachadair/jview/nodepath"
	"github.com/creachadair/jview/tree"
	"github.com/creachadair/jview/validate"
	"go.uber.org/zap"
)

// Tab selects which rendering of the document is shown.
type Tab int

// Constants defining the valid Tab values.
const (
	InputTab Tab = iota
	TreeTab
	FormattedTab

	numTabs = 3
)

var tabStr = [...]string{InputTab: "Input", TreeTab: "Tree", FormattedTab: "Formatted"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabStr) {
		return "invalid tab"
	}
	return tabStr[t]
}

// Options configure a Model. A zero value is ready for use.
type Options struct {
	Config    *config.Config   // if nil, use config.Default()
	Clipboard clipboard.Writer // if nil, use clipboard.System
	Logger    *zap.Logger      // if nil, discard logs
}

// Model is the bubbletea model for the viewer.
type Model struct {
	doc    *document.Document
	view   *tree.View // nil unless doc is valid
	lines  []tree.Line
	cursor int
	tab    Tab

	input     textarea.Model
	validator validate.Validator
	expandAll bool

	viewport viewport.Model
	styles   Styles
	clip     clipboard.Writer
	log      *zap.Logger
	status   string
	width    int
	height   int
}

// New constructs a model displaying doc. The input pane starts with the text
// of doc. If doc is empty, the viewer opens on the Input tab.
func New(doc *document.Document, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		input:     textarea.New(),
		validator: validate.Validator{Lenient: cfg.Lenient},
		expandAll: cfg.ExpandAll,
		viewport:  viewport.New(80, 20),
		styles:    NewStyles(cfg.Colors),
		clip:      opts.Clipboard,
		log:       opts.Logger,
	}
	if m.clip == nil {
		m.clip = clipboard.System{}
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	m.input.Placeholder = "Paste or type JSON here..."
	m.input.MaxHeight = 0
	m.input.SetValue(doc.Text())

	switch {
	case doc.Status() == document.Empty:
		m.tab = InputTab
		m.input.Focus()
	case cfg.View == config.ViewFormatted:
		m.tab = FormattedTab
	default:
		m.tab = TreeTab
	}
	m.setDocument(doc)
	m.refresh()
	return m
}

// Run runs an interactive program for m until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// Tab reports the active tab of m.
func (m Model) Tab() Tab { return m.tab }

// Cursor reports the node path of the tree line under the cursor, or "" if
// there is none.
func (m Model) Cursor() string {
	if m.cursor < len(m.lines) {
		return m.lines[m.cursor].Path
	}
	return ""
}

// Tree returns the tree view of m, or nil if there is no valid document.
func (m Model) Tree() *tree.View { return m.view }

// Status returns the most recent status message.
func (m Model) Status() string { return m.status }

// Document returns the document currently shown by m.
func (m Model) Document() *document.Document { return m.doc }

// Input returns the current contents of the input pane.
func (m Model) Input() string { return m.input.Value() }

// Init implements part of the tea.Model interface.
func (m Model) Init() tea.Cmd {
	if m.tab == InputTab {
		return textarea.Blink
	}
	return nil
}

// Update implements part of the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1) // header and status
		m.input.SetWidth(msg.Width)
		m.input.SetHeight(max(msg.Height-6, 1)) // header, status, and diagnostic
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m, m.setTab((m.tab + 1) % numTabs)
		case "shift+tab":
			return m, m.setTab((m.tab + numTabs - 1) % numTabs)
		case "ctrl+l":
			m.input.Reset()
			m.reload()
			m.status = m.styles.Muted.Render("Cleared input")
			m.refresh()
			return m, nil
		}
		if m.tab == InputTab {
			return m, m.edit(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "y":
			m.copyFormatted()
		case "up", "k":
			if m.tab == TreeTab {
				m.cursor = max(m.cursor-1, 0)
			} else {
				m.viewport.LineUp(1)
			}
		case "down", "j":
			if m.tab == TreeTab {
				m.cursor = min(m.cursor+1, max(len(m.lines)-1, 0))
			} else {
				m.viewport.LineDown(1)
			}
		case "enter", " ", "space":
			m.toggle()
		case "left", "h":
			m.collapseOrParent()
		case "right", "l":
			if ln, ok := m.current(); ok && ln.Expandable && !ln.Expanded {
				m.toggle()
			}
		case "e":
			if m.view != nil {
				m.view.ExpandAll()
				m.log.Debug("expand all", zap.Int("paths", m.view.State().Len()))
			}
		case "c":
			if m.view != nil {
				m.view.CollapseAll()
				m.cursor = 0
				m.log.Debug("collapse all")
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	if m.tab == InputTab {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setTab makes t the active tab, moving the keyboard focus to or from the
// input pane.
func (m *Model) setTab(t Tab) tea.Cmd {
	m.tab = t
	m.log.Debug("switch tab", zap.Stringer("tab", t))
	var cmd tea.Cmd
	if t == InputTab {
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.refresh()
	return cmd
}

// edit delivers a key to the input pane, and reloads the document if the
// text changed.
func (m *Model) edit(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.reload()
	}
	m.refresh()
	return cmd
}

// reload replaces the document with the current contents of the input pane.
func (m *Model) reload() {
	doc := document.Load(m.input.Value(), m.validator)
	m.log.Debug("reload input",
		zap.Int("bytes", len(doc.Text())),
		zap.Stringer("status", doc.Status()))
	m.setDocument(doc)
}

// setDocument makes doc the current document. The tree view and its
// expansion state are replaced, so only the root is expanded (or everything,
// if so configured).
func (m *Model) setDocument(doc *document.Document) {
	m.doc = doc
	m.view, m.lines, m.cursor = nil, nil, 0
	m.status = ""
	if tv, err := doc.View(); err == nil {
		m.view = tv
		if m.expandAll {
			tv.ExpandAll()
		}
	}
}

// current returns the tree line under the cursor, if there is one.
func (m *Model) current() (tree.Line, bool) {
	if m.view == nil || m.tab != TreeTab || m.cursor >= len(m.lines) {
		return tree.Line{}, false
	}
	return m.lines[m.cursor], true
}

// moveTo puts the cursor on the opening line of the node at path.
func (m *Model) moveTo(path string) {
	for i, ln := range m.lines {
		if ln.Path == path && !ln.Closing {
			m.cursor = i
			return
		}
	}
}

// collapseOrParent collapses the node under the cursor if it is open, and
// otherwise moves the cursor to the node's parent.
func (m *Model) collapseOrParent() {
	ln, ok := m.current()
	if !ok {
		return
	} else if ln.Expanded || ln.Closing {
		m.toggle()
		return
	}
	p, err := nodepath.Parse(ln.Path)
	if err != nil {
		m.log.Warn("invalid node path", zap.String("path", ln.Path), zap.Error(err))
		return
	}
	if up, ok := p.Parent(); ok {
		m.moveTo(up.String())
	}
}

func (m *Model) toggle() {
	ln, ok := m.current()
	if !ok || (!ln.Expandable && !ln.Closing) {
		return
	}
	open := m.view.Toggle(ln.Path)
	m.log.Debug("toggle", zap.String("path", ln.Path), zap.Bool("expanded", open))

	// Keep the cursor on the node that was toggled.
	m.lines = m.view.Lines()
	m.moveTo(ln.Path)
}

func (m *Model) copyFormatted() {
	text, err := m.doc.Formatted()
	if err != nil {
		m.status = m.styles.Muted.Render("Nothing to copy")
		return
	}
	if clipboard.Copy(m.clip, text) {
		m.status = m.styles.Success.Render("Copied formatted JSON to clipboard")
	} else {
		m.status = m.styles.Error.Render("Failed to copy to clipboard")
		m.log.Warn("clipboard write failed")
	}
}

// refresh recomputes the visible lines and the viewport content.
func (m *Model) refresh() {
	if m.view != nil {
		m.lines = m.view.Lines()
		m.cursor = min(m.cursor, max(len(m.lines)-1, 0))
	}
	if m.tab == InputTab {
		return
	}
	switch m.doc.Status() {
	case document.Empty:
		m.viewport.SetContent(m.styles.Muted.Render("No JSON data to display"))
		return
	case document.Invalid:
		m.viewport.SetContent(m.styles.Error.Render(m.doc.Err().Error()))
		return
	}
	if m.tab == FormattedTab {
		text, _ := m.doc.Formatted()
		m.viewport.SetContent(text)
		return
	}

	rows := make([]string, len(m.lines))
	for i, ln := range m.lines {
		rows[i] = m.renderLine(ln, i == m.cursor)
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))

	// Scroll so the cursor is visible.
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if h := m.viewport.Height; h > 0 && m.cursor >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(m.cursor - h + 1)
	}
}

func (m Model) renderLine(ln tree.Line, atCursor bool) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", ln.Depth))
	switch {
	case ln.Closing:
		sb.WriteString("  ")
	case ln.Expanded:
		sb.WriteString("▾ ")
	case ln.Expandable:
		sb.WriteString("▸ ")
	default:
		sb.WriteString("  ")
	}
	if ln.Label != "" {
		sb.WriteString(m.styles.Key.Render(ln.Label))
		sb.WriteString(m.styles.Muted.Render(": "))
	}
	sb.WriteString(m.styles.kind(ln.Kind).Render(ln.Text))
	if ln.Count > 0 {
		sb.WriteString(m.styles.Count.Render(fmt.Sprintf(" %d %s", ln.Count, ln.Noun)))
	}
	if atCursor {
		return m.styles.Cursor.Render(sb.String())
	}
	return sb.String()
}

// View implements part of the tea.Model interface.
func (m Model) View() string {
	var tabs []string
	for t := range Tab(numTabs) {
		if t == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(t.String()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  "+m.indicator())
	if st, err := m.doc.Stats(); err == nil {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, m.styles.Status.Render("  "+st.String()))
	}

	body := m.viewport.View()
	if m.tab == InputTab {
		body = m.input.View()
		if err := m.doc.Err(); err != nil && m.doc.Status() == document.Invalid {
			body = lipgloss.JoinVertical(lipgloss.Left, body, m.styles.Error.Render(err.Error()))
		}
	}

	help := m.styles.Muted.Render(m.help())
	footer := "\n" + help
	if m.status != "" {
		footer = m.status + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// indicator summarizes the validity of the current input.
func (m Model) indicator() string {
	switch m.doc.Status() {
	case document.Valid:
		return m.styles.Success.Render("✓ Valid JSON")
	case document.Invalid:
		return m.styles.Error.Render("✗ Invalid JSON")
	default:
		return m.styles.Muted.Render("No input")
	}
}

func (m Model) help() string {
	if m.tab == InputTab {
		return "tab view • ctrl+l clear • ctrl+c quit"
	}
	return "↑/↓ move • ←/→ parent/open • enter toggle • e expand all • c collapse all • " +
		"tab view • ctrl+l clear • y copy • q quit"
}
