package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/scened/params"
	"pfeifer.dev/scened/utils"
)

var (
	Settings = ScenedSettings{}
)

// ScenedSettings are the tunable scene-state constants. The numeric
// defaults carry over from the tuned values of the reference vehicle
// builds; treat them as reasonable defaults, not semantics.
type ScenedSettings struct {
	LogLevel string `json:"log_level"`

	ScreenDimFadeDurUp    float64 `json:"screen_dim_fade_dur_up"`
	ScreenDimFadeDurDown  float64 `json:"screen_dim_fade_dur_down"`
	IndicatorFadeDur      float64 `json:"indicator_fade_dur"`
	DynamicFollowFadeDur  float64 `json:"dynamic_follow_fade_dur"`
	SessionAnimGate       float64 `json:"session_anim_gate"`
	BrakeIndicatorPercent int     `json:"brake_indicator_percent"`

	GradeNumSamples int     `json:"grade_num_samples"`
	GradeLenStep    float64 `json:"grade_len_step"`

	MinDrawDistance  float32 `json:"min_draw_distance"`
	MaxDrawDistance  float32 `json:"max_draw_distance"`
	ProjectionMargin float32 `json:"projection_margin"`

	// TopicTimeoutFrames is how many ticks a topic may stay silent before
	// its scene fields fall back to their unknown values.
	TopicTimeoutFrames uint64 `json:"topic_timeout_frames"`
}

func (s *ScenedSettings) Default() {
	s.LogLevel = "error"
	s.ScreenDimFadeDurUp = 0.5
	s.ScreenDimFadeDurDown = 2.0
	s.IndicatorFadeDur = 0.3
	s.DynamicFollowFadeDur = 0.5
	s.SessionAnimGate = 3.0
	s.BrakeIndicatorPercent = 50
	s.GradeNumSamples = 10
	s.GradeLenStep = 5.0
	s.MinDrawDistance = 5.0
	s.MaxDrawDistance = 100.0
	s.ProjectionMargin = 500.0
	s.TopicTimeoutFrames = 5 * UI_FREQ
}

func (s *ScenedSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.SCENED_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.SetLogLevel()

	return true
}

func (s *ScenedSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *ScenedSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.SCENED_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *ScenedSettings) Unmarshal(data []byte) {
	err := json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
	}
}

func (s *ScenedSettings) SetLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}
