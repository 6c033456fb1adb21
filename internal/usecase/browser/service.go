// Package browser はフロントエンドから呼び出されるファイルブラウザの操作をまとめます
package browser

import (
	"context"
	"fmt"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/infrastructure/filesystem"
	"FolderBrowser/internal/infrastructure/logging"
	"FolderBrowser/internal/infrastructure/platform"
	"FolderBrowser/internal/infrastructure/storage"
)

// FolderPicker はフォルダ選択ダイアログのインターフェースです。
// キャンセルされた場合は ok=false, err=nil を返します
type FolderPicker interface {
	PickFolder(title string) (path string, ok bool, err error)
}

// SearchRequest は検索の要求です
type SearchRequest struct {
	FolderPath string   `json:"folder_path"`
	SearchTerm string   `json:"search_term"`
	Exclude    []string `json:"exclude,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

// Service はファイルブラウザのバックエンド操作を提供します
type Service struct {
	scanner   filesystem.FileSystemScanner
	opener    platform.Opener
	picker    FolderPicker
	favorites storage.FavoritesRepository
	logger    logging.Logger
	exclude   []string
}

// NewService は新しい Service インスタンスを作成します。
// exclude は全ての検索に適用される除外パターンです
func NewService(
	scanner filesystem.FileSystemScanner,
	opener platform.Opener,
	picker FolderPicker,
	favorites storage.FavoritesRepository,
	logger logging.Logger,
	exclude []string,
) *Service {
	return &Service{
		scanner:   scanner,
		opener:    opener,
		picker:    picker,
		favorites: favorites,
		logger:    logger,
		exclude:   exclude,
	}
}

// ListDirectory はフォルダ直下の一覧を返します
func (s *Service) ListDirectory(ctx context.Context, folderPath string) ([]model.FileNode, error) {
	return s.scanner.ListDirectory(ctx, folderPath)
}

// Search はフォルダ以下を再帰的に検索します
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]model.SearchResult, error) {
	exclude := append(append([]string{}, s.exclude...), req.Exclude...)
	results, err := s.scanner.Search(ctx, req.FolderPath, req.SearchTerm, filesystem.SearchOptions{
		Exclude:    exclude,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Log("INFO", fmt.Sprintf("検索完了: %q in %s (%d 件)", req.SearchTerm, req.FolderPath, len(results)), nil)
	return results, nil
}

// OpenPath はファイルまたはフォルダをOSの既定アプリで開きます
func (s *Service) OpenPath(path string) error {
	return s.opener.Open(path)
}

// PickFolder はフォルダ選択ダイアログを表示します
func (s *Service) PickFolder(title string) (string, bool, error) {
	if s.picker == nil {
		return "", false, fmt.Errorf("フォルダ選択ダイアログが利用できません")
	}
	return s.picker.PickFolder(title)
}

// Inspect はファイルの詳細情報を返します
func (s *Service) Inspect(path string) (model.FileDetails, error) {
	return s.scanner.Inspect(path)
}

// LoadFavorites はお気に入りを読み込みます
func (s *Service) LoadFavorites() ([]model.Favorite, error) {
	return s.favorites.Load()
}

// SaveFavorites はお気に入りを丸ごと保存します
func (s *Service) SaveFavorites(favorites []model.Favorite) error {
	if err := s.favorites.Save(favorites); err != nil {
		return err
	}
	s.logger.Log("INFO", fmt.Sprintf("お気に入りを保存: %d 件", len(favorites)), nil)
	return nil
}

// ToggleFavorite はお気に入りに無ければ追加し、あれば削除します。
// 戻り値は操作後にお気に入りに含まれているかどうかです
func (s *Service) ToggleFavorite(favorite model.Favorite) (bool, error) {
	removed, err := s.favorites.Remove(favorite)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if _, err := s.favorites.Add(favorite); err != nil {
		return false, err
	}
	return true, nil
}

// AddFavorite はお気に入りを追加します
func (s *Service) AddFavorite(favorite model.Favorite) (bool, error) {
	return s.favorites.Add(favorite)
}

// RemoveFavorite はお気に入りを削除します
func (s *Service) RemoveFavorite(favorite model.Favorite) (bool, error) {
	return s.favorites.Remove(favorite)
}
