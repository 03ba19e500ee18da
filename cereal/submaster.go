package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"

	"pfeifer.dev/scened/cereal/log"
	"pfeifer.dev/scened/settings"
	"pfeifer.dev/scened/utils"
)

type service struct {
	sub      gomsgq.MsgqSubscriber
	msg      *capnp.Message
	event    log.Event
	updated  bool
	valid    bool
	rcvFrame uint64
}

// SubMaster polls a set of conflated topic subscribers once per tick and
// keeps a per-topic freshness table: whether the topic produced a new
// message this tick and the tick frame it was last received on.
type SubMaster struct {
	frame    uint64
	names    []string
	services map[string]*service
}

func NewSubMaster(names ...string) *SubMaster {
	sm := &SubMaster{
		names:    names,
		services: make(map[string]*service, len(names)),
	}
	for _, name := range names {
		msgq := gomsgq.Msgq{}
		err := msgq.Init(name, int64(settings.GetSegmentSize(name)))
		if err != nil {
			panic(err)
		}
		sub := gomsgq.MsgqSubscriber{}
		sub.Conflate = true
		sub.Init(msgq)
		sm.services[name] = &service{sub: sub}
	}
	return sm
}

// Update advances the tick frame and pulls the latest message per topic.
// Decode failures are logged and treated as "no fresh message".
func (sm *SubMaster) Update() {
	sm.frame++
	for _, name := range sm.names {
		svc := sm.services[name]
		svc.updated = false

		data := svc.sub.Read()
		if len(data) == 0 {
			continue
		}
		msg, err := capnp.Unmarshal(data)
		if err != nil {
			utils.Logde(errors.Wrapf(err, "could not unmarshal %s", name))
			continue
		}
		msg.ResetReadLimit(math.MaxUint64)
		event, err := log.ReadRootEvent(msg)
		if err != nil {
			utils.Logde(errors.Wrapf(err, "could not read %s event", name))
			continue
		}

		svc.msg = msg
		svc.event = event
		svc.valid = event.Valid()
		svc.updated = true
		svc.rcvFrame = sm.frame
	}
}

func (sm *SubMaster) Frame() uint64 {
	return sm.frame
}

func (sm *SubMaster) Updated(name string) bool {
	svc, ok := sm.services[name]
	return ok && svc.updated
}

func (sm *SubMaster) Valid(name string) bool {
	svc, ok := sm.services[name]
	return ok && svc.valid
}

// Event returns the most recently received event for a topic. The zero
// Event is returned before the first message arrives.
func (sm *SubMaster) Event(name string) log.Event {
	svc, ok := sm.services[name]
	if !ok {
		return log.Event{}
	}
	return svc.event
}

// RcvFrame returns the tick frame the topic last produced a message on,
// zero if it never has.
func (sm *SubMaster) RcvFrame(name string) uint64 {
	svc, ok := sm.services[name]
	if !ok {
		return 0
	}
	return svc.rcvFrame
}

func (sm *SubMaster) Close() {
	for _, name := range sm.names {
		err, err2 := sm.services[name].sub.Msgq.Close()
		utils.Logwe(err)
		utils.Logwe(err2)
	}
}
