// Package report は検索結果のレポート生成機能を提供します
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"FolderBrowser/internal/domain/model"
)

const (
	OutputFilePrefix = "output_"
	OutputFileSuffix = ".txt"
	TimestampLayout  = "20060102_150405"
)

// Generator はレポート生成機能を提供します
type Generator struct {
	now func() time.Time
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// CreateOutputFile は出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string) (*os.File, string, error) {
	timestamp := g.now().Format(TimestampLayout)
	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteSearchResults は検索条件と、ルートからの深さに応じてインデントした
// フォルダ（[DIR]）とファイル（[FILE]）の一覧を出力します
func (g *Generator) WriteSearchResults(writer io.Writer, root, term string, results []model.SearchResult) error {
	var b strings.Builder
	fmt.Fprintln(&b, "===== 検索結果 =====")
	fmt.Fprintf(&b, "検索フォルダ: %s\n", root)
	fmt.Fprintf(&b, "検索語: %q\n", term)
	fmt.Fprintf(&b, "件数: %d\n\n", len(results))

	for _, result := range results {
		rel, err := filepath.Rel(root, result.Path)
		if err != nil {
			rel = result.Path
		}
		depth := strings.Count(filepath.ToSlash(rel), "/")

		entryType := "[FILE]"
		if result.IsDirectory {
			entryType = "[DIR] "
		}
		fmt.Fprintf(&b, "%s%s %s\n", strings.Repeat("  ", depth), entryType, filepath.ToSlash(rel))
	}

	_, err := io.WriteString(writer, b.String())
	return err
}

// Generate は outputDir に新しいレポートファイルを作成して検索結果を書き込み、そのパスを返します
func (g *Generator) Generate(outputDir, root, term string, results []model.SearchResult) (string, error) {
	file, path, err := g.CreateOutputFile(outputDir)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := g.WriteSearchResults(file, root, term, results); err != nil {
		return "", fmt.Errorf("レポートの書き込みに失敗しました: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("レポートのクローズに失敗しました: %w", err)
	}
	return path, nil
}
