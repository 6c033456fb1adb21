// Package api はフロントエンド向けのHTTP JSON APIを提供します。
// エンドポイントは元のデスクトップアプリの invoke コマンドと1対1に対応します
package api

import (
	"errors"
	"io/fs"
	"net/http"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/usecase/browser"

	"github.com/gin-gonic/gin"
)

type folderRequest struct {
	FolderPath string `json:"folder_path" binding:"required"`
}

type fileRequest struct {
	FilePath string `json:"file_path" binding:"required"`
}

type pathRequest struct {
	Path string `json:"path" binding:"required"`
}

type searchRequest struct {
	FolderPath string   `json:"folder_path" binding:"required"`
	SearchTerm string   `json:"search_term"`
	Exclude    []string `json:"exclude"`
	MaxResults int      `json:"max_results" binding:"min=0"`
}

// Handlers はAPIのハンドラ群です
type Handlers struct {
	svc *browser.Service
}

// NewHandlers は新しいハンドラ群を作成します
func NewHandlers(svc *browser.Service) *Handlers {
	return &Handlers{svc: svc}
}

// Health はヘルスチェックです
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadDirectory はフォルダ直下の一覧を返します
func (h *Handlers) ReadDirectory(c *gin.Context) {
	var req folderRequest
	if !bind(c, &req) {
		return
	}

	nodes, err := h.svc.ListDirectory(c.Request.Context(), req.FolderPath)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nodes)
}

// SearchDirectory はフォルダ以下を再帰的に検索します
func (h *Handlers) SearchDirectory(c *gin.Context) {
	var req searchRequest
	if !bind(c, &req) {
		return
	}

	results, err := h.svc.Search(c.Request.Context(), browser.SearchRequest{
		FolderPath: req.FolderPath,
		SearchTerm: req.SearchTerm,
		Exclude:    req.Exclude,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// OpenFile はファイルを既定のアプリで開きます
func (h *Handlers) OpenFile(c *gin.Context) {
	var req fileRequest
	if !bind(c, &req) {
		return
	}
	h.open(c, req.FilePath)
}

// OpenFolder はフォルダを既定のファイルマネージャで開きます
func (h *Handlers) OpenFolder(c *gin.Context) {
	var req folderRequest
	if !bind(c, &req) {
		return
	}
	h.open(c, req.FolderPath)
}

func (h *Handlers) open(c *gin.Context, path string) {
	if err := h.svc.OpenPath(path); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// BrowseFolder はネイティブのフォルダ選択ダイアログを表示し、選択されたパスか null を返します
func (h *Handlers) BrowseFolder(c *gin.Context) {
	path, ok, err := h.svc.PickFolder("フォルダを選択")
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, path)
}

// LoadFavorites はお気に入りを返します
func (h *Handlers) LoadFavorites(c *gin.Context) {
	favorites, err := h.svc.LoadFavorites()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// SaveFavorites はお気に入りを丸ごと置き換えます
func (h *Handlers) SaveFavorites(c *gin.Context) {
	var favorites []model.Favorite
	if !bind(c, &favorites) {
		return
	}
	if err := h.svc.SaveFavorites(favorites); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Inspect はファイルの詳細情報を返します
func (h *Handlers) Inspect(c *gin.Context) {
	var req pathRequest
	if !bind(c, &req) {
		return
	}
	details, err := h.svc.Inspect(req.Path)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// fail はエラーメッセージを1つの文字列として返します
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, fs.ErrNotExist) {
		status = http.StatusNotFound
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
