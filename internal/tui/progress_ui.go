// Package tui provides terminal progress rendering for long-running git
// operations.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/internal/output"
)

// ProgressUI renders the progress events of a single git operation.
type ProgressUI interface {
	// Start initializes the UI with the operation title
	Start(title string)
	// Update renders one progress event
	Update(event git.ProgressEvent)
	// Complete finalizes the UI
	Complete()
}

// NewProgressUI creates the appropriate progress UI based on TTY availability
func NewProgressUI(splog *output.Splog) ProgressUI {
	if IsTTY() {
		return NewTTYProgress(splog)
	}
	return NewSimpleProgress(splog)
}

// IsTTY reports whether both ends of the terminal are usable for an
// interactive UI.
func IsTTY() bool {
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// SimpleProgress prints progress line by line (non-TTY)
type SimpleProgress struct {
	splog       *output.Splog
	lastPercent int
}

// NewSimpleProgress creates a new simple progress UI
func NewSimpleProgress(splog *output.Splog) *SimpleProgress {
	return &SimpleProgress{splog: splog, lastPercent: -1}
}

func (p *SimpleProgress) Start(title string) {
	p.splog.Info("%s...", title)
	p.lastPercent = -1
}

func (p *SimpleProgress) Update(event git.ProgressEvent) {
	// Git repeats percentages across phases; only whole-percent changes
	// are worth a log line without a redrawable terminal.
	percent := int(event.Value * 100)
	if percent == p.lastPercent {
		return
	}
	p.lastPercent = percent

	if event.Description != "" {
		p.splog.Info("  %3d%% %s", percent, event.Description)
	} else {
		p.splog.Info("  %3d%%", percent)
	}
}

func (p *SimpleProgress) Complete() {
	p.splog.Info("✓ done")
}

// TTYProgress renders an animated progress bar (TTY)
type TTYProgress struct {
	splog    *output.Splog
	program  *tea.Program
	wasQuiet bool
}

// NewTTYProgress creates a new TTY progress UI
func NewTTYProgress(splog *output.Splog) *TTYProgress {
	return &TTYProgress{splog: splog}
}

func (p *TTYProgress) Start(title string) {
	// Silence the logger while the bar owns the terminal, restoring the
	// caller's setting afterwards.
	p.wasQuiet = p.splog.IsQuiet()
	p.splog.SetQuiet(true)

	model := newProgressBarModel(title)
	p.program = tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	// Run program in background; events arrive via Send
	go func() {
		_, _ = p.program.Run()
	}()
}

func (p *TTYProgress) Update(event git.ProgressEvent) {
	if p.program == nil {
		return
	}
	p.program.Send(progressEventMsg{event: event})
}

func (p *TTYProgress) Complete() {
	if p.program == nil {
		return
	}
	p.program.Send(progressDoneMsg{})
	p.program.Wait()
	p.program = nil
	p.splog.SetQuiet(p.wasQuiet)
}

// Internal bubbletea model for the progress bar
type progressBarModel struct {
	title       string
	description string
	percent     float64
	bar         progress.Model
	done        bool
	styles      progressStyles
}

type progressStyles struct {
	titleStyle lipgloss.Style
	descStyle  lipgloss.Style
	doneStyle  lipgloss.Style
}

type progressEventMsg struct {
	event git.ProgressEvent
}

type progressDoneMsg struct{}

func newProgressBarModel(title string) *progressBarModel {
	bar := progress.New(progress.WithDefaultGradient())

	return &progressBarModel{
		title: title,
		bar:   bar,
		styles: progressStyles{
			titleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			descStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			doneStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},
	}
}

func (m *progressBarModel) Init() tea.Cmd {
	return nil
}

func (m *progressBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil

	case progressEventMsg:
		m.percent = msg.event.Value
		m.description = msg.event.Description
		return m, nil

	case progressDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *progressBarModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.done {
		b.WriteString(fmt.Sprintf("%s %s\n", m.styles.doneStyle.Render("✓"), m.title))
		return b.String()
	}

	b.WriteString(m.styles.titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.percent))
	b.WriteString("\n")
	if m.description != "" {
		b.WriteString(m.styles.descStyle.Render(m.description))
		b.WriteString("\n")
	}

	return b.String()
}
