// Package platform はOS固有の操作（ファイルやフォルダを既定のアプリで開く）を提供します
package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"FolderBrowser/internal/infrastructure/filesystem"
	"FolderBrowser/internal/infrastructure/logging"
)

// ErrUnsupportedPlatform は既定のオープナーが存在しないOSで返されます
var ErrUnsupportedPlatform = errors.New("このOSではファイルを開く操作をサポートしていません")

// Opener はパスをOSの既定アプリで開くインターフェースです
type Opener interface {
	Open(path string) error
}

// NewOpener は実行中のOSに対応した Opener を返します
func NewOpener(logger logging.Logger) Opener {
	return newPlatformOpener(logger)
}

// CommandOpener は外部コマンドにパスを渡して開きます
type CommandOpener struct {
	name   string
	args   []string
	logger logging.Logger
}

// NewCommandOpener は `name args... path` を起動する Opener を作成します
func NewCommandOpener(name string, args []string, logger logging.Logger) *CommandOpener {
	return &CommandOpener{name: name, args: args, logger: logger}
}

// Open はパスの存在を確認してからコマンドを起動します。
// 子プロセスの終了は待たず、バックグラウンドで回収します
func (o *CommandOpener) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return filesystem.NewIOError("open", path, err)
	}

	args := append(append([]string{}, o.args...), path)
	cmd := exec.Command(o.name, args...)
	if err := cmd.Start(); err != nil {
		o.logger.Log("ERROR", fmt.Sprintf("%s の起動に失敗", o.name), err)
		return fmt.Errorf("%s の起動に失敗しました: %w", o.name, err)
	}
	o.logger.Log("INFO", fmt.Sprintf("%s で開きました: %s", o.name, path), nil)

	go func() {
		// explorer.exe は成功時にも非ゼロで終了するため DEBUG に留める
		if err := cmd.Wait(); err != nil {
			o.logger.Log("DEBUG", fmt.Sprintf("%s が終了しました", o.name), err)
		}
	}()
	return nil
}

type unsupportedOpener struct{}

func (unsupportedOpener) Open(string) error {
	return ErrUnsupportedPlatform
}
