package main

import (
	"log/slog"
	"time"

	"pfeifer.dev/scened/cereal"
	"pfeifer.dev/scened/cereal/log"
	"pfeifer.dev/scened/cli"
	"pfeifer.dev/scened/config"
	"pfeifer.dev/scened/params"
	"pfeifer.dev/scened/scene"
	"pfeifer.dev/scened/settings"
	"pfeifer.dev/scened/utils"
)

// topics polled by the fusion loop, conflated so a slow tick reads the
// newest message instead of a backlog.
var topics = []string{
	"modelV2",
	"carState",
	"controlsState",
	"liveCalibration",
	"deviceState",
	"pandaState",
	"radarState",
	"roadCameraState",
	"gpsLocationExternal",
	"ubloxGnss",
	"liveLocationKalman",
	"longitudinalPlan",
	"lateralPlan",
	"driverMonitoringState",
	"sensorEvents",
}

func main() {
	params.EnsureParamDirectories()
	settings.Settings.LoadWithRetries(5)
	cli.Handle()

	loop()
}

func loop() {
	cfg := config.Load()
	sc := scene.NewScene(cfg)
	device := scene.NewDevice()
	device.SetBrightness = setBrightness
	device.SetDisplayPower = setDisplayPower

	sm := cereal.NewSubMaster(topics...)
	defer sm.Close()

	pub := cereal.NewPublisher("sceneState", cereal.SceneStateCreator)

	var tracker utils.UpdateTracker
	tracker.Init(5 * settings.UI_FREQ)

	start := time.Now()
	for {
		time.Sleep(settings.LOOP_DELAY)
		tracker.Update()

		sm.Update()
		sc.Update(sm, time.Since(start).Seconds())
		device.Update(sc)

		publishScene(&pub, sc)

		if sm.Frame()%(30*settings.UI_FREQ) == 0 {
			slog.Debug("tick cadence", "mean interval", tracker.DiffMA.Estimate)
		}
	}
}

func publishScene(pub *cereal.Publisher[log.SceneState], s *scene.Scene) {
	msg, out := pub.NewMessage(true)

	out.SetFrame(s.Frame)
	out.SetStarted(s.Started)
	out.SetEngaged(s.Engaged)
	out.SetStatus(uint16(s.Status))
	out.SetVEgo(s.VEgo)
	out.SetSteeringAngleDeg(s.SteeringAngleDeg)
	out.SetPercentGrade(float32(s.Grade.Average()))
	out.SetScreenDimFade(float32(s.ScreenDimFade.Value))
	out.SetOnePedalFade(float32(s.OnePedalFade.Value))
	out.SetBrakeIndicatorAlpha(float32(s.BrakeFade.Value))
	out.SetDynamicFollowLevel(float32(s.FollowFade.Value))
	out.SetGpsOK(s.GpsOK)
	out.SetGpsAccuracy(s.GpsAccuracy)
	out.SetSatelliteCount(uint16(s.SatelliteCount))
	out.SetWorldObjectsVisible(s.WorldObjectsVisible)
	out.SetTrackVertexCount(uint16(s.TrackVertices.Cnt))

	logSceneState(out)

	utils.Logwe(pub.Send(msg))
}

func logSceneState(out log.SceneState) {
	slog.Debug("sceneState",
		"frame", out.Frame(),
		"started", out.Started(),
		"status", out.Status(),
		"vEgo", out.VEgo(),
		"trackVertexCount", out.TrackVertexCount(),
		"percentGrade", out.PercentGrade(),
		"screenDimFade", out.ScreenDimFade(),
	)
}
