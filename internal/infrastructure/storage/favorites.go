// Package storage はお気に入りフォルダの永続化を提供します
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/infrastructure/logging"

	"github.com/gofrs/flock"
)

// FavoritesRepository はお気に入りの読み書きを行うインターフェースです
type FavoritesRepository interface {
	Load() ([]model.Favorite, error)
	Save(favorites []model.Favorite) error
	Add(favorite model.Favorite) (bool, error)
	Remove(favorite model.Favorite) (bool, error)
}

// FavoritesStore はお気に入りをJSONファイルに保存します。
// 書き込みは常にファイル全体の置き換えで、<path>.lock によりプロセス間で直列化されます
type FavoritesStore struct {
	path   string
	logger logging.Logger
	mu     sync.Mutex
}

// NewFavoritesStore は path に保存する FavoritesStore を作成します
func NewFavoritesStore(path string, logger logging.Logger) *FavoritesStore {
	return &FavoritesStore{path: path, logger: logger}
}

// Path は保存先のファイルパスを返します
func (s *FavoritesStore) Path() string {
	return s.path
}

// Load はお気に入りを読み込みます。ファイルが存在しない場合は空のリストを返します
func (s *FavoritesStore) Load() ([]model.Favorite, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Favorite{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("お気に入りの読み込みに失敗しました: %w", err)
	}

	favorites := []model.Favorite{}
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("お気に入りの解析に失敗しました: %w", err)
	}
	return favorites, nil
}

// Save はお気に入りのリストでファイル全体を置き換えます
func (s *FavoritesStore) Save(favorites []model.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withLock(func() error {
		return s.write(favorites)
	})
}

// Add はお気に入りを末尾に追加します。同じ名前とパスが既にある場合は false を返します
func (s *FavoritesStore) Add(favorite model.Favorite) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := false
	err := s.withLock(func() error {
		favorites, err := s.Load()
		if err != nil {
			return err
		}
		if Contains(favorites, favorite) {
			return nil
		}
		added = true
		return s.write(append(favorites, favorite))
	})
	return added, err
}

// Remove は名前とパスが一致するお気に入りを削除します。見つからない場合は false を返します
func (s *FavoritesStore) Remove(favorite model.Favorite) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	err := s.withLock(func() error {
		favorites, err := s.Load()
		if err != nil {
			return err
		}
		kept := favorites[:0]
		for _, f := range favorites {
			if f.Equal(favorite) {
				removed = true
				continue
			}
			kept = append(kept, f)
		}
		if !removed {
			return nil
		}
		return s.write(kept)
	})
	return removed, err
}

// Contains は favorites に名前とパスが一致する要素があるかを返します
func Contains(favorites []model.Favorite, favorite model.Favorite) bool {
	for _, f := range favorites {
		if f.Equal(favorite) {
			return true
		}
	}
	return false
}

func (s *FavoritesStore) withLock(fn func() error) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("ロックの取得に失敗しました %s: %w", lock.Path(), err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Log("WARN", "ロックの解放に失敗", err)
		}
	}()

	return fn()
}

func (s *FavoritesStore) write(favorites []model.Favorite) error {
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("お気に入りのエンコードに失敗しました: %w", err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		s.logger.Log("ERROR", "お気に入りの保存に失敗", err)
		return err
	}
	s.logger.Log("DEBUG", fmt.Sprintf("お気に入りを保存しました: %d 件", len(favorites)), nil)
	return nil
}

// atomicWrite は同じディレクトリの一時ファイルに書き込んでから rename で置き換えます
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".favorites-*")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("一時ファイルへの書き込みに失敗しました: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("一時ファイルの同期に失敗しました: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("一時ファイルのクローズに失敗しました: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("パーミッションの設定に失敗しました: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%s への置き換えに失敗しました: %w", path, err)
	}

	committed = true
	return nil
}
