package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/config"
)

func TestApp_TypeSaveQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("x;\n"), 0o644))

	cfg := config.Defaults()
	cfg.Editor.DynamicTypes = false
	ed, err := newEditor(cfg, path)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, newApp(editor.NewModel(ed, editor.DefaultModelConfig("main.cpp"))),
		teatest.WithInitialTermSize(60, 8))

	tm.Type("int ")
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return strings.Contains(ansi.Strip(string(out)), "[+]")
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyF2})
	tm.Send(tea.KeyMsg{Type: tea.KeyF4})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final, ok := tm.FinalModel(t).(app)
	require.True(t, ok)
	require.False(t, final.editor.Editor().Modified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "int x;\n", string(data))
}

func TestApp_CtrlCEndsProgram(t *testing.T) {
	ed, err := newEditor(config.Defaults(), "")
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, newApp(editor.NewModel(ed, editor.DefaultModelConfig(""))),
		teatest.WithInitialTermSize(40, 6))
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
