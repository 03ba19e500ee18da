package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempParams(t *testing.T) {
	t.Helper()
	old := ParamsPath
	ParamsPath = filepath.Join(t.TempDir(), "d")
	require.NoError(t, os.MkdirAll(ParamsPath, 0o775))
	t.Cleanup(func() { ParamsPath = old })
}

func TestPutGetRoundTrip(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("TestValue", []byte("hello")))
	data, err := GetParam("TestValue")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// overwrite is atomic and leaves no temp files behind
	require.NoError(t, PutParam("TestValue", []byte("world")))
	data, err = GetParam("TestValue")
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), data)

	entries, err := os.ReadDir(ParamsPath)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGetBool(t *testing.T) {
	useTempParams(t)

	assert.False(t, GetBool("MissingToggle"))

	require.NoError(t, PutParam("Toggle", []byte("1")))
	assert.True(t, GetBool("Toggle"))

	require.NoError(t, PutParam("Toggle", []byte("0")))
	assert.False(t, GetBool("Toggle"))
}

func TestGetInt(t *testing.T) {
	useTempParams(t)

	assert.Equal(t, 7, GetInt("MissingInt", 7))

	require.NoError(t, PutParam("Count", []byte("42\n")))
	assert.Equal(t, 42, GetInt("Count", 0))

	require.NoError(t, PutParam("Count", []byte("not a number")))
	assert.Equal(t, 7, GetInt("Count", 7))
}

func TestRemoveParam(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("Doomed", []byte("x")))
	require.NoError(t, RemoveParam("Doomed"))

	_, err := GetParam("Doomed")
	assert.True(t, os.IsNotExist(err))
}

func TestMeasureSlotParam(t *testing.T) {
	assert.Equal(t, "MeasureSlot00", MeasureSlotParam(0))
	assert.Equal(t, "MeasureSlot09", MeasureSlotParam(9))
}

func TestExists(t *testing.T) {
	useTempParams(t)

	ok, err := Exists(ParamPath("Nope"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, PutParam("Yep", []byte("1")))
	ok, err = Exists(ParamPath("Yep"))
	require.NoError(t, err)
	assert.True(t, ok)
}
