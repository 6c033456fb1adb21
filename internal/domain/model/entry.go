// package model はドメインモデルを定義します
package model

import "time"

// SearchResult は検索でヒットした要素（ファイルまたはディレクトリ）を表します
type SearchResult struct {
	// Name は要素のベース名を表します
	Name string `json:"name"`
	// Path は要素のパスを表します（検索ルートが相対なら相対のまま）
	Path string `json:"path"`
	// IsDirectory はディレクトリであるかどうかを示します
	IsDirectory bool `json:"is_directory"`
}

// FileNode はディレクトリ一覧の1要素を表します。
// 一覧は1階層のみなので Children は常に nil です
type FileNode struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	IsDirectory bool       `json:"is_directory"`
	Children    []FileNode `json:"children"`
}

// Favorite はお気に入りフォルダを表します。名前とパスの組で同一性を判定します
type Favorite struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Equal は名前とパスが一致するかを返します
func (f Favorite) Equal(other Favorite) bool {
	return f.Name == other.Name && f.Path == other.Path
}

// FileDetails はファイルの詳細情報を表します
type FileDetails struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	ModTime     time.Time `json:"mod_time"`
	IsDirectory bool      `json:"is_directory"`
	// MIMEType はディレクトリの場合は空です
	MIMEType string `json:"mime_type,omitempty"`
	// IsBinary は先頭バイトにNULLや制御文字が含まれる場合に true になります
	IsBinary bool `json:"is_binary"`
}
