package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/memory"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

func newEditor(t *testing.T) (Model, *memory.NodeStore) {
	t.Helper()
	store := memory.NewNodeStore([]pathway.Node{
		{ID: "degree", Title: "Degree", Description: "Get a degree", Details: []string{"Math"}, Icon: "Book", Position: 1},
		{ID: "exams", Title: "Exams", Description: "Pass exams", Icon: "FileText", Position: 2},
	})
	session := admin.NewSession("tty", service.NewAccessor(store, zap.NewNop()), zap.NewNop(), nil)

	m := New(context.Background(), session)
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model), store
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func TestEditorLoadsNodes(t *testing.T) {
	m, _ := newEditor(t)

	assert.Len(t, m.list.Items(), 2)
	assert.Contains(t, m.View(), "Degree")
	assert.Contains(t, m.View(), "Select a node to edit it.")
}

func TestEditorToggleSelection(t *testing.T) {
	m, _ := newEditor(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.view.HasSelection())
	assert.True(t, m.editing, "selecting focuses the form")
	assert.Equal(t, "Degree", m.inputs[fieldTitle].Value())
	assert.Equal(t, "Math", m.details.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.view.HasSelection())
	assert.Empty(t, m.inputs[fieldTitle].Value())
}

func TestEditorSaveWritesStore(t *testing.T) {
	m, store := newEditor(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, typeText(" BA"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	next, _ = next.(Model).Update(cmd())
	m = next.(Model)

	saved, ok := pathway.Find(store.Snapshot(), "degree")
	require.True(t, ok)
	assert.Equal(t, "Degree BA", saved.Title)
	assert.Equal(t, []string{"Math"}, saved.Details)

	notes := m.Notifications()
	require.NotEmpty(t, notes)
	assert.Equal(t, admin.LevelSuccess, notes[len(notes)-1].Level)
	assert.Contains(t, m.statusLine(), "Changes saved")
}

func TestEditorSaveWithoutSelectionIsNoop(t *testing.T) {
	m, _ := newEditor(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
}

func TestEditorTabCyclesFields(t *testing.T) {
	m, _ := newEditor(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for _, want := range []field{fieldDescription, fieldDetails, fieldIcon, fieldPosition, fieldTitle} {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, m.focus)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldPosition, m.focus)
}
