package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/innertune/internal/models"
)

// PageLoader fetches the page behind a continuation cursor.
type PageLoader func(ctx context.Context, cont models.Continuation) (*models.ResultPage, error)

// pageMsg carries the outcome of a background page fetch.
type pageMsg struct {
	page *models.ResultPage
	err  error
}

var _ tea.Model = (*Model)(nil)

// Model is the result browser: a list of parsed entities with on-demand
// continuation paging.
type Model struct {
	list    list.Model
	keys    keyMap
	loader  PageLoader
	cont    models.Continuation
	loading bool
	err     error
}

// New creates a browser seeded with the first page. loader is invoked when
// the user requests more results and the page carries a cursor.
func New(title string, first *models.ResultPage, loader PageLoader) *Model {
	l := list.New(toListItems(first.Items), list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.Styles.Title = styles.title

	return &Model{
		list:   l,
		keys:   newKeyMap(),
		loader: loader,
		cont:   first.Continuation,
	}
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd { return nil }

// Update implements [tea.Model].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.more):
			if m.loading || m.cont.IsZero() {
				return m, nil
			}
			m.loading = true
			return m, m.fetchNext()
		}

	case pageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.cont = msg.page.Continuation
		cmd := m.list.SetItems(append(m.list.Items(), toListItems(msg.page.Items)...))
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *Model) View() string {
	view := m.list.View()
	switch {
	case m.err != nil:
		view += "\n" + styles.err.Render(fmt.Sprintf("error: %v", m.err))
	case m.loading:
		view += "\n" + styles.help.Render("loading…")
	case !m.cont.IsZero():
		view += "\n" + styles.help.Render("press m for more results")
	default:
		view += "\n" + styles.ok.Render("end of results")
	}
	return view
}

func (m *Model) fetchNext() tea.Cmd {
	cont := m.cont
	return func() tea.Msg {
		page, err := m.loader(context.Background(), cont)
		return pageMsg{page: page, err: err}
	}
}

// Run starts the browser and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
