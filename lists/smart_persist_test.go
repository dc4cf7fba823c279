package lists_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartlist/lists"
	"smartlist/persist"
)

func TestSmartList_SaveLoad(t *testing.T) {
	for _, c := range []persist.Codec{persist.JSON, persist.YAML} {
		t.Run(c.Extension(), func(t *testing.T) {
			name := filepath.Join(t.TempDir(), "MyList")

			var buf bytes.Buffer
			src := lists.NewSmartList[float32](lists.WithLogging(true), lists.WithLogOutput(&buf))
			src.AddMany(1.1, 2.5, 3.5, 5.5, 2.5)
			require.NoError(t, src.SaveTo(name, c))
			assert.Contains(t, buf.String(), "Saving to file "+name+c.Extension()+"\n")
			assert.Contains(t, buf.String(), "File content:\n")

			dst := lists.NewSmartList[float32]()
			require.NoError(t, dst.LoadFrom(name, c))
			assert.Equal(t, src.ToSlice(), dst.ToSlice())
			assert.Equal(t, 5, dst.Len())
			assert.True(t, dst.Logging())
		})
	}
}

func TestSmartList_SaveLoadLogFlagOff(t *testing.T) {
	name := filepath.Join(t.TempDir(), "quiet")
	src := newIntList(3, 1, 2)
	require.NoError(t, src.SaveTo(name, nil))

	dst := lists.NewSmartList[int](lists.WithLogging(true), lists.WithLogOutput(&bytes.Buffer{}))
	require.NoError(t, dst.LoadFrom(name, nil))
	assert.False(t, dst.Logging())
	assert.Equal(t, []int{3, 1, 2}, dst.ToSlice())

	// appended after load, tail must be valid
	dst.Add(4)
	assert.Equal(t, []int{3, 1, 2, 4}, dst.ToSlice())
}

func TestSmartList_SaveLoadEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, lists.NewSmartList[string]().SaveTo(name, persist.JSON))

	data, err := os.ReadFile(name + ".json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"data\": []")

	var buf bytes.Buffer
	dst := lists.NewSmartList[string](lists.WithLogOutput(&buf))
	dst.AddMany("x", "y")
	require.NoError(t, dst.LoadFrom(name, persist.JSON))
	assert.True(t, dst.IsEmpty())
}

func TestSmartList_LoadMissing(t *testing.T) {
	var buf bytes.Buffer
	l := lists.NewSmartList[int](lists.WithLogging(true), lists.WithLogOutput(&buf))
	l.AddMany(1, 2, 3)

	name := filepath.Join(t.TempDir(), "missing")
	err := l.LoadFrom(name, persist.YAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.True(t, l.IsEmpty())
	assert.Contains(t, buf.String(), "Loading failed. Failed to open file "+name+".yaml")
}

func TestSmartList_SaveUnwritable(t *testing.T) {
	var buf bytes.Buffer
	l := lists.NewSmartList[int](lists.WithLogging(true), lists.WithLogOutput(&buf))
	l.Add(1)

	err := l.SaveTo(filepath.Join(t.TempDir(), "no", "such", "dir"), nil)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "Saving failed.")
	assert.Equal(t, []int{1}, l.ToSlice())
}
