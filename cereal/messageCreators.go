package cereal

import (
	"pfeifer.dev/scened/cereal/log"
)

func SceneStateCreator(evt log.Event) (log.SceneState, error) {
	return evt.NewSceneState()
}
