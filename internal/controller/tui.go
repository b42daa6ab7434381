package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/testrunner/internal/model"
	"golang.org/x/term"
)

// Lines reserved for the pager title and help footer.
const pagerChrome = 4

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	neutralText = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TUI implements UI using Bubble Tea for interactive display.
// Content taller than the terminal opens in a scrollable pager.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, simple: NewSimpleUI(cmd)}
}

// DisplayTests shows the selected tests.
func (p *TUI) DisplayTests(ctx context.Context, tests []m.TestCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := fmt.Sprintf("Tests (%d)", len(tests))

	return p.show(ctx, title, renderTestsTable(tests))
}

// DisplayTestResult shows a classified run.
func (p *TUI) DisplayTestResult(ctx context.Context, result *m.TestResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show(ctx, resultTitle(result), renderTestResult(result))
}

// DisplayCoverage shows the aggregate coverage. It always fits on screen.
func (p *TUI) DisplayCoverage(ctx context.Context, coverage m.Coverage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.cmd.OutOrStdout(), "%s\n", titleStyle.Render("Coverage "+coverage.String()))

	return err
}

// DisplayCoveragePerTest shows per-test coverage.
func (p *TUI) DisplayCoveragePerTest(ctx context.Context, perTest *m.CoveragePerTestMethod) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	count := 0
	if perTest != nil {
		count = perTest.Len()
	}

	return p.show(ctx, fmt.Sprintf("Coverage per test (%d)", count), renderPerTestTable(perTest))
}

// DisplayRecord shows a stored run.
func (p *TUI) DisplayRecord(ctx context.Context, record m.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show(ctx, "Run "+record.ID, renderRecord(record))
}

// DisplayProgress delegates to the plain progress bar.
func (p *TUI) DisplayProgress(done, total int, test string) {
	p.simple.DisplayProgress(done, total, test)
}

// DisplayError delegates to the plain error output.
func (p *TUI) DisplayError(ctx context.Context, err error) {
	p.simple.DisplayError(ctx, err)
}

func resultTitle(result *m.TestResult) string {
	if result == nil {
		return "No tests"
	}

	if len(result.FailingTests) > 0 {
		return failStyle.Render(fmt.Sprintf("%d failing", len(result.FailingTests)))
	}

	return passStyle.Render(fmt.Sprintf("%d passing", len(result.PassingTests))) +
		neutralText.Render(fmt.Sprintf(", %d skipped", len(result.AssumptionFailingTests)+len(result.IgnoredTests)))
}

// show prints content directly when it fits the terminal, otherwise it
// opens a pager until the user quits or ctx is done.
func (p *TUI) show(ctx context.Context, title, content string) error {
	out := p.cmd.OutOrStdout()
	width, height := terminalSize(out)

	model := newPagerModel(title, content, width, height)

	if !model.needsPagination() {
		_, err := fmt.Fprintf(out, "%s\n%s", titleStyle.Render(title), content)
		return err
	}

	program := tea.NewProgram(model,
		tea.WithOutput(out),
		tea.WithInput(p.cmd.InOrStdin()),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is the Bubble Tea model scrolling over rendered content.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	height   int
	ready    bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	model := pagerModel{title: title, content: content, height: height}

	if width > 0 && height > 0 {
		model.resize(width, height)
	}

	return model
}

func (pm *pagerModel) resize(width, height int) {
	pm.height = height

	bodyHeight := height - pagerChrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !pm.ready {
		pm.viewport = viewport.New(width, bodyHeight)
		pm.viewport.SetContent(pm.content)
		pm.ready = true

		return
	}

	pm.viewport.Width = width
	pm.viewport.Height = bodyHeight
}

// needsPagination reports whether the content is taller than the screen.
func (pm pagerModel) needsPagination() bool {
	if pm.height == 0 {
		return false
	}

	return lipgloss.Height(pm.content) > pm.height-pagerChrome
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.resize(msg.Width, msg.Height)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()

			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()

			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  g/G top/bottom  q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}
