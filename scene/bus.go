package scene

import (
	"pfeifer.dev/scened/cereal/log"
)

// Bus is the freshness-table view of the message bus the scene reads from.
// *cereal.SubMaster satisfies it; tests substitute their own events.
type Bus interface {
	Frame() uint64
	Updated(name string) bool
	Event(name string) log.Event
	RcvFrame(name string) uint64
}
