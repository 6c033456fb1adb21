// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/infrastructure/logging"

	"github.com/bmatcuk/doublestar/v4"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// FileSystemScanner はディレクトリの一覧取得と検索を提供するインターフェースです
type FileSystemScanner interface {
	DirectoryValidator
	ListDirectory(ctx context.Context, path string) ([]model.FileNode, error)
	Search(ctx context.Context, rootPath, term string, opts SearchOptions) ([]model.SearchResult, error)
	Inspect(path string) (model.FileDetails, error)
}

// SearchOptions は検索の追加オプションです。ゼロ値は制限なしを意味します
type SearchOptions struct {
	// Exclude はルートからの相対パス（スラッシュ区切り）に対する doublestar パターンです。
	// 一致したディレクトリは結果には含まれますが、中身は走査されません
	Exclude []string
	// MaxResults は結果の上限です。0 は無制限です
	MaxResults int
}

// Scanner はファイルシステムを走査するための構造体です
type Scanner struct {
	logger          logging.Logger
	binaryCheckSize int
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger) *Scanner {
	return &Scanner{
		logger:          logger,
		binaryCheckSize: DefaultBinaryCheckSize,
	}
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	return nil
}

// ListDirectory はディレクトリ直下の要素を1階層分だけ返します。
// 要素のメタデータ取得に1つでも失敗した場合は結果を返さずに失敗します
func (s *Scanner) ListDirectory(ctx context.Context, path string) ([]model.FileNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		ioErr := NewIOError("readdir", path, err)
		s.logger.Log("ERROR", "ディレクトリの読み込みに失敗", ioErr)
		return nil, ioErr
	}

	nodes := make([]model.FileNode, 0, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		info, err := os.Stat(entryPath)
		if err != nil {
			ioErr := NewIOError("stat", entryPath, err)
			s.logger.Log("ERROR", "メタデータの取得に失敗", ioErr)
			return nil, ioErr
		}

		nodes = append(nodes, model.FileNode{
			Name:        entry.Name(),
			Path:        entryPath,
			IsDirectory: info.IsDir(),
		})
	}

	return nodes, nil
}

// Search は rootPath 以下を幅優先で走査し、ベース名に term を含む要素を返します。
// 比較は大文字小文字を区別せず、空の term はすべての要素に一致します。
//
// 最初に発生したエラーで走査を中断し、それまでに見つかった結果は破棄します。
// 同じ実ディレクトリは一度しか展開しません。シンボリックリンク経由のディレクトリは
// 実パスで辿れるディレクトリをすべて展開した後に展開するため、実パス側が優先されます
func (s *Scanner) Search(ctx context.Context, rootPath, term string, opts SearchOptions) ([]model.SearchResult, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("除外パターンが不正です: %q", pattern)
		}
	}

	s.logger.Log("DEBUG", fmt.Sprintf("検索を開始: root=%s term=%q", rootPath, term), nil)

	needle := strings.ToLower(term)
	results := []model.SearchResult{}
	queue := []string{rootPath}
	var linked []string
	expanded := make(map[string]struct{})

	for len(queue) > 0 || len(linked) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(queue) == 0 {
			queue, linked = linked, nil
		}

		current := queue[0]
		queue = queue[1:]

		canonical, err := filepath.EvalSymlinks(current)
		if err != nil {
			return nil, s.abort(NewIOError("resolve", current, err))
		}
		if _, seen := expanded[canonical]; seen {
			continue
		}
		expanded[canonical] = struct{}{}

		entries, err := os.ReadDir(current)
		if err != nil {
			return nil, s.abort(NewIOError("readdir", current, err))
		}

		for _, entry := range entries {
			name := entry.Name()
			entryPath := filepath.Join(current, name)

			info, err := os.Stat(entryPath)
			if err != nil {
				return nil, s.abort(NewIOError("stat", entryPath, err))
			}

			if strings.Contains(strings.ToLower(name), needle) {
				results = append(results, model.SearchResult{
					Name:        name,
					Path:        entryPath,
					IsDirectory: info.IsDir(),
				})
				if opts.MaxResults > 0 && len(results) >= opts.MaxResults {
					s.logger.Log("DEBUG", fmt.Sprintf("検索結果が上限に達しました: %d", opts.MaxResults), nil)
					return results, nil
				}
			}

			if info.IsDir() && !excluded(rootPath, entryPath, opts.Exclude) {
				if entry.Type()&fs.ModeSymlink != 0 {
					linked = append(linked, entryPath)
				} else {
					queue = append(queue, entryPath)
				}
			}
		}
	}

	s.logger.Log("DEBUG", fmt.Sprintf("検索が完了: %d 件", len(results)), nil)
	return results, nil
}

func (s *Scanner) abort(err *IOError) error {
	s.logger.Log("ERROR", "検索を中断しました", err)
	return err
}

// excluded はディレクトリがいずれかの除外パターンに一致するかを返します
func excluded(rootPath, dirPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(rootPath, dirPath)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
