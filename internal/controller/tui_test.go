package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand(t)

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY(t *testing.T) {
	_, stdout, _ := newTestCommand(t)

	assert.False(t, IsTTY(stdout))
}

func TestTUI_PrintsDirectlyWithoutTerminal(t *testing.T) {
	cmd, stdout, _ := newTestCommand(t)
	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplayTestResult(context.Background(), sampleResult()))

	out := stdout.String()
	assert.Contains(t, out, "1 failing")
	assert.Contains(t, out, "FAIL TestFailing")
}

func TestTUI_DisplayCoverage(t *testing.T) {
	cmd, stdout, _ := newTestCommand(t)

	require.NoError(t, NewTUI(cmd).DisplayCoverage(context.Background(), m.Coverage{InstructionsCovered: 1, InstructionsTotal: 4}))
	assert.Contains(t, stdout.String(), "Coverage 1/4 (25.00%)")
}

func TestTUI_CancelledContext(t *testing.T) {
	cmd, stdout, _ := newTestCommand(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewTUI(cmd).DisplayTests(ctx, nil), context.Canceled)
	assert.Empty(t, stdout.String())
}

func TestResultTitle(t *testing.T) {
	assert.Equal(t, "No tests", resultTitle(nil))
	assert.Contains(t, resultTitle(sampleResult()), "1 failing")

	passing := m.NewTestResult()
	passing.PassingTests = []string{"TestA", "TestB"}
	passing.IgnoredTests = []string{"TestC"}

	title := resultTitle(passing)
	assert.Contains(t, title, "2 passing")
	assert.Contains(t, title, "1 skipped")
}

func TestPagerModel(t *testing.T) {
	content := strings.Repeat("line\n", 50)

	t.Run("fits on screen", func(t *testing.T) {
		model := newPagerModel("title", "short\n", 80, 24)
		assert.False(t, model.needsPagination())
	})

	t.Run("unknown terminal size", func(t *testing.T) {
		model := newPagerModel("title", content, 0, 0)
		assert.False(t, model.needsPagination())
		assert.Equal(t, "loading...", model.View())
	})

	t.Run("scrolls and quits", func(t *testing.T) {
		model := newPagerModel("title", content, 80, 24)
		require.True(t, model.needsPagination())

		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
		pager := updated.(pagerModel)
		assert.True(t, pager.viewport.AtBottom())

		updated, _ = pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
		pager = updated.(pagerModel)
		assert.True(t, pager.viewport.AtTop())
		assert.Contains(t, pager.View(), "q quit")

		_, cmd := pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("resize", func(t *testing.T) {
		model := newPagerModel("title", content, 0, 0)

		updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		pager := updated.(pagerModel)

		assert.True(t, pager.ready)
		assert.Equal(t, 30-pagerChrome, pager.viewport.Height)
	})
}
