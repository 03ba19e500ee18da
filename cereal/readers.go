package cereal

import (
	"pfeifer.dev/scened/cereal/log"
)

// SceneStateReader decodes the published scene summary for subscribers.
// Consumed topics are read through the SubMaster event table instead of
// per-topic subscribers.
func SceneStateReader(evt log.Event) (log.SceneState, error) {
	return evt.SceneState()
}
