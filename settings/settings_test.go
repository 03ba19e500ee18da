package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/scened/params"
)

func useTempParams(t *testing.T) {
	t.Helper()
	old := params.ParamsPath
	params.ParamsPath = t.TempDir()
	t.Cleanup(func() { params.ParamsPath = old })
}

func TestDefaults(t *testing.T) {
	var s ScenedSettings
	s.Default()

	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, 0.5, s.ScreenDimFadeDurUp)
	assert.Equal(t, 2.0, s.ScreenDimFadeDurDown)
	assert.Equal(t, 0.3, s.IndicatorFadeDur)
	assert.Equal(t, 50, s.BrakeIndicatorPercent)
	assert.Equal(t, 10, s.GradeNumSamples)
	assert.Equal(t, float32(5.0), s.MinDrawDistance)
	assert.Equal(t, float32(100.0), s.MaxDrawDistance)
	assert.Equal(t, uint64(5*UI_FREQ), s.TopicTimeoutFrames)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempParams(t)

	var s ScenedSettings
	s.Default()
	s.GradeLenStep = 7.5
	s.BrakeIndicatorPercent = 33
	s.Save()

	var loaded ScenedSettings
	require.True(t, loaded.Load())
	assert.Equal(t, 7.5, loaded.GradeLenStep)
	assert.Equal(t, 33, loaded.BrakeIndicatorPercent)
	// untouched fields keep their defaults
	assert.Equal(t, 0.3, loaded.IndicatorFadeDur)
}

func TestLoadMissingParamFallsBackToDefaults(t *testing.T) {
	useTempParams(t)

	var s ScenedSettings
	assert.False(t, s.Load())
	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, 10, s.GradeNumSamples)
}

func TestLoadPartialParam(t *testing.T) {
	useTempParams(t)

	require.NoError(t, params.PutParam(params.SCENED_SETTINGS,
		[]byte(`{"grade_num_samples": 20}`)))

	var s ScenedSettings
	require.True(t, s.Load())
	assert.Equal(t, 20, s.GradeNumSamples)
	assert.Equal(t, 0.5, s.ScreenDimFadeDurUp)
}

func TestLoadMalformedParam(t *testing.T) {
	useTempParams(t)

	require.NoError(t, params.PutParam(params.SCENED_SETTINGS, []byte("{not json")))

	var s ScenedSettings
	assert.False(t, s.Load())
	assert.Equal(t, 10, s.GradeNumSamples)
}

func TestGetSegmentSize(t *testing.T) {
	assert.Equal(t, DEFAULT_SEGMENT_SIZE, GetSegmentSize("carState"))
	assert.Equal(t, 4*DEFAULT_SEGMENT_SIZE, GetSegmentSize("modelV2"))
}
