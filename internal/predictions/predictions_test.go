package predictions

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrediction(t *testing.T) {
	p, err := NewPrediction(58)
	require.NoError(t, err)
	assert.Equal(t, Prediction{TeamA: 58, TeamB: 42}, p)

	for _, v := range []float64{0, 100, 33.5} {
		p, err := NewPrediction(v)
		require.NoError(t, err)
		assert.InDelta(t, 100, p.TeamA+p.TeamB, 1e-9)
	}

	_, err = NewPrediction(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = NewPrediction(100.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = NewPrediction(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParsePrediction(t *testing.T) {
	p, err := ParsePrediction(" 62.5 ")
	require.NoError(t, err)
	assert.Equal(t, 37.5, p.TeamB)

	_, err = ParsePrediction("abc")
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParsePrediction("150")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLocalStorage(t *testing.T) {
	storage := NewLocalStorage(filepath.Join(t.TempDir(), "nested"))

	_, ok, err := storage.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.SetItem("k", "v1"))
	require.NoError(t, storage.SetItem("k", "v2"))
	value, ok, err := storage.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	entries, err := os.ReadDir(storage.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")

	require.NoError(t, storage.RemoveItem("k"))
	require.NoError(t, storage.RemoveItem("k"))
	_, ok, err = storage.GetItem("k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, storage.SetItem("../escape", "x"))
	assert.Error(t, storage.SetItem("", "x"))
}

func TestStoreRoundTrip(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())

	store := OpenStore(storage)
	assert.Empty(t, store.All())

	p1, _ := NewPrediction(58)
	p2, _ := NewPrediction(20)
	require.NoError(t, store.Save("1", p1))
	require.NoError(t, store.Save("12", p2))
	require.NoError(t, store.Save("3", p2))
	require.NoError(t, store.Clear("3"))

	reloaded := OpenStore(storage)
	assert.Equal(t, store.All(), reloaded.All())
	assert.Equal(t, []string{"1", "12"}, reloaded.MatchIDs())

	got, ok := reloaded.Get("1")
	require.True(t, ok)
	assert.Equal(t, p1, got)
	_, ok = reloaded.Get("3")
	assert.False(t, ok)

	raw, ok, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"1":{"teamA":58,"teamB":42},"12":{"teamA":20,"teamB":80}}`, raw)
}

func TestLoadPredictionsCorrupt(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())
	require.NoError(t, storage.SetItem(StorageKey, "{not json"))

	assert.Empty(t, LoadPredictions(storage))
	assert.NotNil(t, LoadPredictions(storage))

	store := OpenStore(storage)
	p, _ := NewPrediction(70)
	require.NoError(t, store.Save("5", p))
	assert.Len(t, OpenStore(storage).All(), 1)
}

type failingStorage struct{}

func (failingStorage) GetItem(string) (string, bool, error) { return "", false, os.ErrPermission }
func (failingStorage) SetItem(string, string) error         { return os.ErrPermission }

func TestStoreSurfacesWriteErrors(t *testing.T) {
	store := OpenStore(failingStorage{})
	assert.Empty(t, store.All())

	p, _ := NewPrediction(50)
	err := store.Save("1", p)
	assert.ErrorIs(t, err, os.ErrPermission)
}
