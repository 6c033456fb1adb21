package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/infrastructure/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *FavoritesStore {
	t.Helper()
	return NewFavoritesStore(filepath.Join(t.TempDir(), "nested", "favorites.json"), logging.NewNop())
}

func TestFavoritesStore_LoadMissingFile(t *testing.T) {
	store := newStore(t)

	favorites, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestFavoritesStore_SaveAndLoad(t *testing.T) {
	store := newStore(t)
	want := []model.Favorite{
		{Name: "docs", Path: "/home/u/docs"},
		{Name: "music", Path: "/home/u/music"},
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"docs","path":"/home/u/docs"},{"name":"music","path":"/home/u/music"}]`, string(data))
}

func TestFavoritesStore_SaveOverwritesWholeFile(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Save([]model.Favorite{{Name: "a", Path: "/a"}, {Name: "b", Path: "/b"}}))
	require.NoError(t, store.Save(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".favorites-", "一時ファイルが残っています")
	}
}

func TestFavoritesStore_LoadCorruptFile(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestFavoritesStore_AddRemove(t *testing.T) {
	store := newStore(t)
	docs := model.Favorite{Name: "docs", Path: "/home/u/docs"}

	added, err := store.Add(docs)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add(docs)
	require.NoError(t, err)
	assert.False(t, added, "重複は追加されない")

	removed, err := store.Remove(model.Favorite{Name: "docs", Path: "/elsewhere"})
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = store.Remove(docs)
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFavoritesStore_ConcurrentAdd(t *testing.T) {
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Add(model.Favorite{Name: string(rune('a' + i)), Path: "/p"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestContains(t *testing.T) {
	favorites := []model.Favorite{{Name: "a", Path: "/a"}}
	assert.True(t, Contains(favorites, model.Favorite{Name: "a", Path: "/a"}))
	assert.False(t, Contains(favorites, model.Favorite{Name: "a", Path: "/b"}))
	assert.False(t, Contains(nil, model.Favorite{}))
}
