// Package ui はネイティブのフォルダ選択ダイアログを提供します
package ui

import (
	"errors"
	"fmt"

	"FolderBrowser/internal/infrastructure/filesystem"

	"github.com/sqweek/dialog"
)

// DirectorySelector はディレクトリ選択機能を提供します
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
	browse    func(title string) (string, error)
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
		browse: func(title string) (string, error) {
			return dialog.Directory().Title(title).Browse()
		},
	}
}

// PickFolder はダイアログを表示してディレクトリを選択します。
// キャンセルされた場合は ok=false でエラーは返しません
func (d *DirectorySelector) PickFolder(title string) (string, bool, error) {
	selectedDir, err := d.browse(title)
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ディレクトリの選択に失敗しました: %w", err)
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", false, fmt.Errorf("無効なディレクトリが選択されました: %w", err)
	}

	return selectedDir, true, nil
}
