package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milchschlumpf/navbug/pkg/navbug/sections"
)

func TestSelectionStartsOnFirstSection(t *testing.T) {
	sel := NewSelection(sections.Default())

	assert.Equal(t, 0, sel.CurrentID())
	assert.Equal(t, "home1", sel.Current().Route)
}

func TestSetNotifiesListenersInOrder(t *testing.T) {
	sel := NewSelection(sections.Default())

	var calls []string
	sel.Subscribe(func(prev, cur sections.Section) {
		calls = append(calls, "a:"+prev.Route+"->"+cur.Route)
	})
	sel.Subscribe(func(prev, cur sections.Section) {
		calls = append(calls, "b:"+prev.Route+"->"+cur.Route)
	})

	require.True(t, sel.Set(2))
	assert.Equal(t, []string{"a:home1->home3", "b:home1->home3"}, calls)
	assert.Equal(t, 2, sel.CurrentID())
}

func TestSetSameOrUnknownIsNoop(t *testing.T) {
	sel := NewSelection(sections.Default())
	notified := 0
	sel.Subscribe(func(prev, cur sections.Section) { notified++ })

	assert.False(t, sel.Set(0))
	assert.False(t, sel.Set(9))
	assert.False(t, sel.Set(-1))
	assert.Equal(t, 0, notified)
	assert.Equal(t, 0, sel.CurrentID())
}

func TestUnsubscribe(t *testing.T) {
	sel := NewSelection(sections.Default())
	notified := 0
	unsubscribe := sel.Subscribe(func(prev, cur sections.Section) { notified++ })

	sel.Set(1)
	unsubscribe()
	sel.Set(2)

	assert.Equal(t, 1, notified)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	store := NewStore(path)

	sel := NewSelection(sections.Default())
	sel.Set(3)
	require.NoError(t, store.Save(sel))

	restored := NewSelection(sections.Default())
	ok, err := store.Load(restored)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sel.CurrentID(), restored.CurrentID())
	assert.Equal(t, "home4", restored.Current().Route)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.toml"))
	sel := NewSelection(sections.Default())

	ok, err := store.Load(sel)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, sel.CurrentID())
}

func TestStoreLoadFallsBackToRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("current_tab = 7\nroute = \"home2\"\n"), 0o644))

	sel := NewSelection(sections.Default())
	ok, err := NewStore(path).Load(sel)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, sel.CurrentID())
}

func TestStoreLoadIgnoresUnknownSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("current_tab = 7\nroute = \"settings\"\n"), 0o644))

	sel := NewSelection(sections.Default())
	ok, err := NewStore(path).Load(sel)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, sel.CurrentID())
}

func TestStoreLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("current_tab = = ="), 0o644))

	_, err := NewStore(path).Load(NewSelection(sections.Default()))
	assert.Error(t, err)
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFileName, NewStore("  ").Path())
}
