// Package tui is the terminal rendition of the admin edit surface.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
)

// field indexes the form controls in focus order.
type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldDetails
	fieldIcon
	fieldPosition
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Details", "Icon", "Position"}

type (
	loadedMsg struct{ err error }
	savedMsg  struct {
		node *pathway.Node
		err  error
	}
)

type nodeItem struct {
	node     pathway.Node
	selected bool
}

func (i nodeItem) Title() string       { return i.node.Title }
func (i nodeItem) Description() string { return i.node.Description }
func (i nodeItem) FilterValue() string { return i.node.Title }

type nodeDelegate struct{}

func (d nodeDelegate) Height() int                               { return 1 }
func (d nodeDelegate) Spacing() int                              { return 0 }
func (d nodeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d nodeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(nodeItem)
	glyph := it.node.Glyph().Symbol
	line := fmt.Sprintf("%3d %s %s", it.node.Position, glyph, it.node.Title)
	if it.selected {
		line = accentStyle.Render(line + "  [editing]")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

var (
	selectKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/close"))
	focusKey  = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "form"))
	saveKey   = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))
	reloadKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
)

// Model drives one admin.Session from the terminal. The session owns all
// state transitions; the model mirrors its View after every step.
type Model struct {
	ctx     context.Context
	session *admin.Session

	list    list.Model
	inputs  [fieldCount]textinput.Model
	details textarea.Model

	editing bool
	focus   field
	status  []admin.Notification
	view    admin.View
}

// New creates an editor over session. ctx bounds store calls.
func New(ctx context.Context, session *admin.Session) Model {
	l := list.New(nil, nodeDelegate{}, 60, 16)
	l.Title = titleStyle.Render("Pathway nodes")
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("node", "nodes")
	l.Styles.Title = titleStyle
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{selectKey, focusKey, saveKey, reloadKey} }

	m := Model{ctx: ctx, session: session, list: l}
	for i := range m.inputs {
		if field(i) == fieldDetails {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 500
		m.inputs[i] = ti
	}
	m.inputs[fieldIcon].Placeholder = strings.Join(pathway.KnownIcons()[:3], ", ") + ", ..."
	m.inputs[fieldPosition].CharLimit = 9

	m.details = textarea.New()
	m.details.Placeholder = "One detail per line"
	m.details.ShowLineNumbers = false
	m.details.SetHeight(5)
	return m
}

// Init loads the nodes.
func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	return loadedMsg{err: m.session.Load(m.ctx)}
}

func (m Model) save() tea.Msg {
	node, err := m.session.Save(m.ctx)
	return savedMsg{node: node, err: err}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width/2, msg.Height-4)
		m.details.SetWidth(msg.Width/2 - 16)
		return m, nil

	case loadedMsg:
		m.refresh()
		return m, nil

	case savedMsg:
		m.refresh()
		if msg.err != nil {
			m.status = append(m.status, admin.Notification{Level: admin.LevelError, Title: msg.err.Error()})
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, saveKey) {
			return m, m.submit()
		}
		if m.editing {
			return m.updateForm(msg)
		}
		if m.list.FilterState() != list.Filtering {
			switch {
			case msg.String() == "q" || msg.String() == "esc":
				return m, tea.Quit
			case key.Matches(msg, selectKey):
				return m.toggleSelection()
			case key.Matches(msg, focusKey):
				if m.view.HasSelection() {
					return m, m.focusField(fieldTitle)
				}
				return m, nil
			case key.Matches(msg, reloadKey):
				return m, m.load
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) toggleSelection() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(nodeItem)
	if !ok {
		return m, nil
	}
	if err := m.session.Select(item.node.ID); err != nil {
		m.status = append(m.status, admin.Notification{Level: admin.LevelError, Title: err.Error()})
		return m, nil
	}
	m.refresh()
	if m.view.HasSelection() {
		return m, m.focusField(fieldTitle)
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blur()
		return *m, nil
	case "tab":
		return *m, m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab":
		return *m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	if m.focus == fieldDetails {
		m.details, cmd = m.details.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return *m, cmd
}

// submit hands the form to the session and saves in the background.
func (m *Model) submit() tea.Cmd {
	if !m.view.HasSelection() {
		return nil
	}
	m.session.Apply(m.formInput())
	return m.save
}

func (m *Model) focusField(f field) tea.Cmd {
	m.blur()
	m.editing = true
	m.focus = f
	if f == fieldDetails {
		return m.details.Focus()
	}
	return m.inputs[f].Focus()
}

func (m *Model) blur() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.details.Blur()
}

// refresh mirrors the session and resets the inputs to the session's form.
func (m *Model) refresh() {
	m.view = m.session.View()
	m.status = append(m.status, m.session.DrainNotifications()...)

	items := make([]list.Item, 0, len(m.view.Nodes))
	for _, node := range m.view.Nodes {
		items = append(items, nodeItem{node: node, selected: m.view.IsSelected(node.ID)})
	}
	m.list.SetItems(items)

	if !m.view.HasSelection() {
		m.blur()
	}
	form := m.view.Form
	m.inputs[fieldTitle].SetValue(form.Title)
	m.inputs[fieldDescription].SetValue(form.Description)
	m.inputs[fieldIcon].SetValue(form.Icon)
	m.inputs[fieldPosition].SetValue(form.Position)
	m.details.SetValue(form.Details)
}

func (m Model) formInput() admin.FormInput {
	return admin.FormInput{
		ID:          m.view.Form.ID,
		Title:       m.inputs[fieldTitle].Value(),
		Description: m.inputs[fieldDescription].Value(),
		Details:     m.details.Value(),
		Icon:        m.inputs[fieldIcon].Value(),
		Position:    m.inputs[fieldPosition].Value(),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	left := m.list.View()

	var right string
	if m.view.HasSelection() {
		rows := []string{titleStyle.Render("Edit " + m.view.Selected.Title), ""}
		for i := field(0); i < fieldCount; i++ {
			label := labelStyle.Render(fieldLabels[i])
			if m.editing && m.focus == i {
				label = focusedLabel.Render(fieldLabels[i])
			}
			var control string
			if i == fieldDetails {
				control = m.details.View()
			} else {
				control = m.inputs[i].View()
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, control))
		}
		if m.view.State == admin.StateSaving {
			rows = append(rows, "", mutedStyle.Render("Saving..."))
		}
		right = panelStyle.Render(strings.Join(rows, "\n"))
	} else {
		right = mutedStyle.Render("Select a node to edit it.")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return body + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if len(m.status) == 0 {
		return mutedStyle.Render("enter: edit/close  tab: next field  ctrl+s: save  esc: back  q: quit")
	}
	last := m.status[len(m.status)-1]
	text := last.Title
	if last.Message != "" {
		text += " " + last.Message
	}
	if last.Level == admin.LevelError {
		return errorStyle.Render("✖ " + text)
	}
	return successStyle.Render("✔ " + text)
}

// Notifications returns everything shown on the status line so far.
func (m Model) Notifications() []admin.Notification {
	return append([]admin.Notification(nil), m.status...)
}

// Run starts the editor on the terminal.
func Run(ctx context.Context, session *admin.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, session), opts...).Run()
	return err
}
