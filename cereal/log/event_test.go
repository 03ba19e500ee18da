package log

import (
	"math"
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventWireRoundTrip(t *testing.T) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	evt, err := NewRootEvent(seg)
	require.NoError(t, err)
	evt.SetLogMonoTime(123456)
	evt.SetValid(true)

	cs, err := evt.NewCarState()
	require.NoError(t, err)
	cs.SetVEgo(27.5)
	cs.SetSteeringAngleDeg(-3.25)
	cs.SetSteeringPressed(true)

	data, err := msg.Marshal()
	require.NoError(t, err)

	decoded, err := capnp.Unmarshal(data)
	require.NoError(t, err)
	decoded.ResetReadLimit(math.MaxUint64)
	out, err := ReadRootEvent(decoded)
	require.NoError(t, err)

	assert.Equal(t, uint64(123456), out.LogMonoTime())
	assert.True(t, out.Valid())
	assert.Equal(t, Event_Which_carState, out.Which())

	outCS, err := out.CarState()
	require.NoError(t, err)
	assert.Equal(t, float32(27.5), outCS.VEgo())
	assert.Equal(t, float32(-3.25), outCS.SteeringAngleDeg())
	assert.True(t, outCS.SteeringPressed())
}

// The zero Event must read as all-default values without erroring; the bus
// poller hands it out for topics that have not produced a message yet.
func TestZeroEventReadsAsDefaults(t *testing.T) {
	var evt Event

	assert.False(t, evt.Valid())
	assert.Equal(t, uint64(0), evt.LogMonoTime())

	cs, err := evt.ControlsState()
	require.NoError(t, err)
	assert.False(t, cs.Enabled())
	assert.Equal(t, AlertStatus_normal, cs.AlertStatus())

	ds, err := evt.DeviceState()
	require.NoError(t, err)
	assert.False(t, ds.Started())
	temps, err := ds.CpuTempC()
	require.NoError(t, err)
	assert.Equal(t, 0, temps.Len())
}
