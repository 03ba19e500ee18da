package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	ss "pfeifer.dev/scened/settings"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Int
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	saveSettings
)

type settingsItem struct {
	title, desc string
	state       settingsState
	Type        SettingType

	setString func(*ss.ScenedSettings, string)
	setFloat  func(*ss.ScenedSettings, float64)
	setInt    func(*ss.ScenedSettings, int)
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput.SetValue("")
				m.textInput.Focus()
			case saveSettings:
				m.state = showSettingsMenu
				mm.state = showMenu
				ss.Settings.Save()
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu
			m.applyInput(m.textInput.Value())
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applyInput parses the typed value per the item type and writes it into
// the in-memory settings. Parse failures leave the setting untouched.
func (m settingsModel) applyInput(result string) {
	switch m.selectedItem.Type {
	case String:
		if m.selectedItem.setString != nil {
			m.selectedItem.setString(&ss.Settings, result)
		}
	case Float:
		val, err := strconv.ParseFloat(result, 64)
		if err == nil && m.selectedItem.setFloat != nil {
			m.selectedItem.setFloat(&ss.Settings, val)
		}
	case Int:
		val, err := strconv.Atoi(result)
		if err == nil && m.selectedItem.setInt != nil {
			m.selectedItem.setInt(&ss.Settings, val)
		}
	}
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title: "Set Log Level",
			desc:  "Modify how verbose logging will be for the scened system",
			Type:  String,
			state: settingsInput,
			setString: func(s *ss.ScenedSettings, v string) {
				s.LogLevel = v
			},
		},
		settingsItem{
			title: "Screen Dim Fade Up Duration",
			desc:  "Seconds for the screen to fade up to a brighter dim mode",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.ScreenDimFadeDurUp = v
			},
		},
		settingsItem{
			title: "Screen Dim Fade Down Duration",
			desc:  "Seconds for the screen to fade down to a dimmer mode",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.ScreenDimFadeDurDown = v
			},
		},
		settingsItem{
			title: "Indicator Fade Duration",
			desc:  "Seconds for the brake and one-pedal indicators to fade in or out",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.IndicatorFadeDur = v
			},
		},
		settingsItem{
			title: "Dynamic Follow Fade Duration",
			desc:  "Seconds for the follow level indicator to move one full level",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.DynamicFollowFadeDur = v
			},
		},
		settingsItem{
			title: "Session Animation Gate",
			desc:  "Seconds after the car starts before indicator animations run",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.SessionAnimGate = v
			},
		},
		settingsItem{
			title: "Brake Indicator Percent",
			desc:  "Friction brake percent that triggers the brake indicator fade",
			Type:  Int,
			state: settingsInput,
			setInt: func(s *ss.ScenedSettings, v int) {
				s.BrakeIndicatorPercent = v
			},
		},
		settingsItem{
			title: "Grade Sample Count",
			desc:  "Number of elevation samples in the rolling grade window",
			Type:  Int,
			state: settingsInput,
			setInt: func(s *ss.ScenedSettings, v int) {
				s.GradeNumSamples = v
			},
		},
		settingsItem{
			title: "Grade Step Length",
			desc:  "Meters travelled between elevation samples of the grade window",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.GradeLenStep = v
			},
		},
		settingsItem{
			title: "Minimum Draw Distance",
			desc:  "Closest distance in meters the projected path geometry reaches",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.MinDrawDistance = float32(v)
			},
		},
		settingsItem{
			title: "Maximum Draw Distance",
			desc:  "Farthest distance in meters the projected path geometry reaches",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.MaxDrawDistance = float32(v)
			},
		},
		settingsItem{
			title: "Projection Margin",
			desc:  "Pixels outside the viewport a projected vertex may land and still count",
			Type:  Float,
			state: settingsInput,
			setFloat: func(s *ss.ScenedSettings, v float64) {
				s.ProjectionMargin = float32(v)
			},
		},
		settingsItem{
			title: "Topic Timeout Frames",
			desc:  "Ticks a bus topic may stay silent before its fields reset",
			Type:  Int,
			state: settingsInput,
			setInt: func(s *ss.ScenedSettings, v int) {
				s.TopicTimeoutFrames = uint64(v)
			},
		},
		settingsItem{
			title: "Save Settings",
			desc:  "Persists any updates to the settings across reboots",
			state: saveSettings,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Scened Settings"
	return m
}
