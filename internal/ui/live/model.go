package live

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

// Options configures the quiz UI model.
type Options struct {
	NoColor            bool
	TickInterval       time.Duration
	AutoAdvance        time.Duration
	SecondsPerQuestion int
	ShuffleQuestions   bool
	ShuffleOptions     bool
	Catalog            question.Catalog
	Source             string
	Now                func() time.Time
}

// Model renders the quiz as a full-screen Bubble Tea program. The session
// is owned by the event loop and mutated only from Update.
type Model struct {
	session *quiz.Session
	choices []question.Choice
	opts    Options
	keys    keyMap
	help    help.Model
	results table.Model

	screen           screen
	overlay          overlay
	chapterCursor    int
	shuffleQuestions bool
	shuffleOptions   bool
	answer           answerState
	feedback         *feedback
	seq              int
	review           []quiz.ReviewItem
	reviewIndex      int
	summary          quiz.Summary
	notice           string
	now              time.Time
	width            int
}

// NewModel constructs the UI over a session and the bank it was built from.
func NewModel(session *quiz.Session, bank *question.Bank, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.AutoAdvance < 0 {
		opts.AutoAdvance = 0
	}
	if opts.Catalog == nil {
		opts.Catalog = question.DefaultCatalog()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	results := table.New(
		table.WithColumns(resultColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	results.SetStyles(tableStyles(opts.NoColor))
	h := help.New()
	if opts.NoColor {
		h.Styles = help.Styles{}
	}
	return Model{
		session:          session,
		choices:          question.Choices(bank, opts.Catalog),
		opts:             opts,
		keys:             defaultKeyMap(),
		help:             h,
		results:          results,
		shuffleQuestions: opts.ShuffleQuestions,
		shuffleOptions:   opts.ShuffleOptions,
		now:              opts.Now(),
	}
}

// Init starts the countdown ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.opts.TickInterval)
}

// Update consumes key presses, timer ticks, and auto-advance signals.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.results.SetWidth(typed.Width)
		m.results.SetHeight(max(typed.Height-12, 3))
		m.results.SetColumns(resultColumns(typed.Width))
		return m, nil
	case tickMsg:
		m = m.onTick(time.Time(typed))
		return m, tick(m.opts.TickInterval)
	case advanceMsg:
		return m.onAdvance(typed), nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if key.Matches(typed, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.overlay != overlayNone {
			return m.updateOverlay(typed), nil
		}
		switch m.screen {
		case screenQuiz:
			return m.updateQuiz(typed)
		case screenReview:
			return m.updateReview(typed), nil
		case screenResults:
			return m.updateResults(typed)
		default:
			return m.updateStart(typed)
		}
	}
	return m, nil
}

// View renders the current screen, any overlay, and the key help.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenQuiz:
		body = renderQuiz(m)
	case screenReview:
		body = renderReview(m)
	case screenResults:
		body = renderResults(m)
	default:
		body = renderStart(m)
	}
	parts := []string{renderTitle(m), body}
	if m.overlay != overlayNone {
		parts = append(parts, renderOverlay(m))
	}
	if m.notice != "" {
		parts = append(parts, stylize(m.notice, m.opts.NoColor, lipgloss.Color("214")))
	}
	parts = append(parts, m.help.View(m.helpKeys()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// tickMsg carries a countdown tick.
type tickMsg time.Time

// advanceMsg ends the post-submit feedback identified by seq.
type advanceMsg struct {
	seq int
}

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// advanceAfter schedules the end of submit feedback.
func advanceAfter(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return advanceMsg{seq: seq} })
}
