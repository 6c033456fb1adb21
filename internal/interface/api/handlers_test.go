package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/infrastructure/config"
	"FolderBrowser/internal/infrastructure/filesystem"
	"FolderBrowser/internal/infrastructure/logging"
	"FolderBrowser/internal/infrastructure/storage"
	"FolderBrowser/internal/usecase/browser"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingOpener struct {
	opened []string
}

func (o *recordingOpener) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return filesystem.NewIOError("open", path, err)
	}
	o.opened = append(o.opened, path)
	return nil
}

type stubPicker struct {
	path string
	ok   bool
}

func (p stubPicker) PickFolder(string) (string, bool, error) {
	return p.path, p.ok, nil
}

func newTestRouter(t *testing.T, picker browser.FolderPicker) (*gin.Engine, *recordingOpener) {
	t.Helper()
	logger := logging.NewNop()
	opener := &recordingOpener{}
	favorites := storage.NewFavoritesStore(filepath.Join(t.TempDir(), "favorites.json"), logger)
	svc := browser.NewService(filesystem.NewScanner(logger), opener, picker, favorites, logger, nil)
	return NewRouter(svc, zap.NewNop(), config.Default().Server), opener
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "foo.txt"), []byte("foo"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "foo2.txt"), []byte("foo"), 0644))
	return root
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	rec := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadDirectory(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	root := makeTree(t)

	rec := do(t, router, http.MethodPost, "/api/read_directory", gin.H{"folder_path": root})
	require.Equal(t, http.StatusOK, rec.Code)

	var nodes []model.FileNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	require.Len(t, nodes, 2)
	assert.Equal(t, "foo.txt", nodes[0].Name)
	assert.True(t, nodes[1].IsDirectory)
	assert.Contains(t, rec.Body.String(), `"children":null`)
}

func TestReadDirectory_Errors(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPost, "/api/read_directory", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/read_directory", gin.H{"folder_path": filepath.Join(t.TempDir(), "nope")})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "nope")
}

func TestSearchDirectory(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	root := makeTree(t)

	rec := do(t, router, http.MethodPost, "/api/search_directory", gin.H{"folder_path": root, "search_term": "FOO"})
	require.Equal(t, http.StatusOK, rec.Code)

	var results []model.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "foo.txt", results[0].Name)
	assert.Equal(t, "foo2.txt", results[1].Name)
}

func TestSearchDirectory_NoMatchesIsEmptyArray(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	rec := do(t, router, http.MethodPost, "/api/search_directory", gin.H{"folder_path": makeTree(t), "search_term": "zzz"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOpenFileAndFolder(t *testing.T) {
	router, opener := newTestRouter(t, nil)
	root := makeTree(t)
	file := filepath.Join(root, "foo.txt")

	rec := do(t, router, http.MethodPost, "/api/open_file", gin.H{"file_path": file})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `true`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/open_folder", gin.H{"folder_path": root})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{file, root}, opener.opened)

	rec = do(t, router, http.MethodPost, "/api/open_file", gin.H{"file_path": filepath.Join(root, "missing")})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBrowseFolder(t *testing.T) {
	t.Run("選択", func(t *testing.T) {
		router, _ := newTestRouter(t, stubPicker{path: "/picked", ok: true})
		rec := do(t, router, http.MethodPost, "/api/browse_folder", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `"/picked"`, rec.Body.String())
	})

	t.Run("キャンセル", func(t *testing.T) {
		router, _ := newTestRouter(t, stubPicker{})
		rec := do(t, router, http.MethodPost, "/api/browse_folder", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `null`, rec.Body.String())
	})
}

func TestFavorites(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	favorites := []model.Favorite{{Name: "docs", Path: "/docs"}}
	rec = do(t, router, http.MethodPut, "/api/favorites", favorites)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"docs","path":"/docs"}]`, rec.Body.String())

	rec = do(t, router, http.MethodPut, "/api/favorites", gin.H{"not": "a list"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInspect(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	root := makeTree(t)

	rec := do(t, router, http.MethodPost, "/api/inspect", gin.H{"path": filepath.Join(root, "foo.txt")})
	require.Equal(t, http.StatusOK, rec.Code)

	var details model.FileDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, int64(3), details.Size)
	assert.False(t, details.IsBinary)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/search_directory", nil)
	req.Header.Set("Origin", "http://localhost:1420")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"http://localhost:1420"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:1420"}, cfg.AllowOrigins)
}
