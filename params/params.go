package params

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

var ParamsPath string = "/data/params/d"

// Params read by scened. The values are owned by the surrounding system;
// scened re-reads them on coarse timers.
var (
	IS_METRIC                 = "IsMetric"
	SCREEN_DIM_MODE           = "ScreenDimMode"
	DISABLE_DISENGAGE_ON_GAS  = "DisableDisengageOnGas"
	ONE_PEDAL_MODE            = "OnePedalMode"
	ONE_PEDAL_ENGAGE_ON_GAS   = "OnePedalModeEngageOnGas"
	ONE_PEDAL_PAUSE_STEERING  = "OnePedalPauseBlinkerSteering"
	SPEED_LIMIT_CONTROL       = "SpeedLimitControl"
	ACCEL_MODE                = "AccelMode"
	ACCEL_MODE_BUTTON         = "AccelModeButton"
	DYNAMIC_FOLLOW            = "DynamicFollow"
	DYNAMIC_FOLLOW_TOGGLE     = "DynamicFollowToggle"
	MEASURE_NUM_SLOTS         = "MeasureNumSlots"
	END_TO_END_TOGGLE         = "EndToEndToggle"
	LANELESS_MODE             = "LanelessMode"
	FRICTION_BRAKE_PERCENT    = "FrictionBrakePercent"
	ENABLE_WIDE_CAMERA        = "EnableWideCamera"
	SHOW_DEBUG_UI             = "ShowDebugUI"
	SCENED_SETTINGS           = "ScenedSettings"
)

// MeasureSlotParam is the per-slot metric id param, MeasureSlot00..09.
func MeasureSlotParam(i int) string {
	return fmt.Sprintf("MeasureSlot%02d", i)
}

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(name string) ([]byte, error) {
	return os.ReadFile(ParamPath(name))
}

// GetBool reads a boolean param stored as "0"/"1". Missing or malformed
// params read as false.
func GetBool(name string) bool {
	data, err := GetParam(name)
	if err != nil {
		return false
	}
	return len(data) > 0 && data[0] == '1'
}

// GetInt reads an integer param, returning the fallback when the param is
// missing or malformed.
func GetInt(name string, fallback int) int {
	data, err := GetParam(name)
	if err != nil {
		return fallback
	}
	v, err := strconv.Atoi(string(trimSpace(data)))
	if err != nil {
		return fallback
	}
	return v
}

func trimSpace(data []byte) []byte {
	start := 0
	end := len(data)
	for start < end && (data[start] == ' ' || data[start] == '\n' || data[start] == '\t' || data[start] == '\r') {
		start++
	}
	for end > start && (data[end-1] == ' ' || data[end-1] == '\n' || data[end-1] == '\t' || data[end-1] == '\r') {
		end--
	}
	return data[start:end]
}

func PutParam(name string, data []byte) error {
	path := ParamPath(name)
	dir := filepath.Dir(path)
	lockDir := filepath.Dir(dir)
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	unlock, err := lockParams(lockDir)
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(name string) error {
	path := ParamPath(name)
	dir := filepath.Dir(path)
	lockDir := filepath.Dir(dir)

	unlock, err := lockParams(lockDir)
	if err != nil {
		return err
	}
	defer unlock()

	os.Remove(path)

	return syncDir(dir)
}

// lockParams takes the params directory lock, retrying briefly and forcing
// the lock file away if a writer died holding it.
func lockParams(lockDir string) (func(), error) {
	lockPath := filepath.Join(lockDir, ".lock")
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking param directory")
		}
		if locked {
			break
		}
		retries += 1
		if retries > 30 {
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		time.Sleep(1 * time.Millisecond)
	}

	return func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock params directory", "error", err)
		}
		if err := os.Remove(lockPath); err != nil {
			slog.Error("could not remove params lock file", "error", err)
		}
	}, nil
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}
	return nil
}
