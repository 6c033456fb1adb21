package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError はファイルシステム操作の失敗を表す唯一のエラー種別です。
// パスが存在しない、権限がない、ディレクトリでない等の区別は Err で行います
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError は err を IOError で包みます。*fs.PathError の場合は重複するパスを取り除きます
func NewIOError(op, path string, err error) *IOError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
