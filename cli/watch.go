package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/scened/cereal/log"
	"pfeifer.dev/scened/scene"
)

type watchModel struct {
	state log.SceneState
	valid bool
}

func (m watchModel) Update(msg tea.Msg, mm *uiModel) (watchModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.state = out
	}

	return m, nil
}

func (m watchModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for scene state...\n")
	}
	return docStyle.Render(fmt.Sprintf(
		"frame: %d\nstarted: %t\nengaged: %t\nstatus: %s\nspeed: %f\nsteering angle: %f\npercent grade: %f\nscreen dim fade: %f\none pedal fade: %f\nbrake indicator alpha: %f\ndynamic follow level: %f\ngps ok: %t\ngps accuracy: %f\nsatellites: %d\nworld objects visible: %t\ntrack vertices: %d",
		m.state.Frame(),
		m.state.Started(),
		m.state.Engaged(),
		scene.Status(m.state.Status()).String(),
		m.state.VEgo(),
		m.state.SteeringAngleDeg(),
		m.state.PercentGrade(),
		m.state.ScreenDimFade(),
		m.state.OnePedalFade(),
		m.state.BrakeIndicatorAlpha(),
		m.state.DynamicFollowLevel(),
		m.state.GpsOK(),
		m.state.GpsAccuracy(),
		m.state.SatelliteCount(),
		m.state.WorldObjectsVisible(),
		m.state.TrackVertexCount(),
	) + "\n")
}
