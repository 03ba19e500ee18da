package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/scened/cereal"
	"pfeifer.dev/scened/cereal/log"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showWatch
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	settings settingsModel
	watch    watchModel
	sub      *cereal.Subscriber[log.SceneState]
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel(state mainState) uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify the persisted settings of scened", state: showSettings},
		item{title: "Watch", desc: "Watch the live scene state from scened", state: showWatch},
	}

	listDelegate := list.NewDefaultDelegate()
	sub := cereal.NewSubscriber("sceneState", cereal.SceneStateReader, true)
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		state:    state,
		settings: getSettingsModel(),
		sub:      &sub,
	}
	m.list.Title = "Scened Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.watch, _ = m.watch.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showWatch:
		m.watch, cmd = m.watch.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showWatch:
		return m.watch.View()
	}
	return docStyle.Render(m.list.View())
}

func interactive() {
	state, ok := chooseStart()
	if !ok {
		return
	}
	p := tea.NewProgram(initialModel(state), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
