package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"FolderBrowser/internal/domain/model"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultBinaryCheckSize = 1024

// Inspect はファイルまたはディレクトリの詳細情報を返します
func (s *Scanner) Inspect(path string) (model.FileDetails, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.FileDetails{}, NewIOError("stat", path, err)
	}

	details := model.FileDetails{
		Name:        filepath.Base(path),
		Path:        path,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		IsDirectory: info.IsDir(),
	}
	if info.IsDir() {
		return details, nil
	}

	head, err := s.readHead(path)
	if err != nil {
		return model.FileDetails{}, NewIOError("read", path, err)
	}
	details.IsBinary = s.isBinaryFile(head)
	details.MIMEType = mimetype.Detect(head).String()

	return details, nil
}

// readHead はファイル先頭の binaryCheckSize バイトを読み込みます
func (s *Scanner) readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, s.binaryCheckSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}

// isBinaryFile は与えられたバイトデータがバイナリファイルかどうかを判定します
func (s *Scanner) isBinaryFile(content []byte) bool {
	checkSize := s.binaryCheckSize
	if len(content) < checkSize {
		checkSize = len(content)
	}

	// NULL(0x00)やタブ未満の制御文字を検出
	for i := 0; i < checkSize; i++ {
		if content[i] < 0x09 {
			return true
		}
	}
	return false
}
