package browser

import (
	"sort"
	"strings"

	"FolderBrowser/internal/domain/model"

	"github.com/maruel/natural"
)

// NaturalLess は数字の連続を数値として比較する自然順の比較です。
// "file2" は "file10" より前になり、大文字小文字は区別せずに並べます。
// 小文字化して同じ名前になる場合だけ元の文字列で比較します
func NaturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return natural.Less(la, lb)
	}
	return natural.Less(a, b)
}

// SortNodes は一覧を名前の自然順に並べ替えます
func SortNodes(nodes []model.FileNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return NaturalLess(nodes[i].Name, nodes[j].Name)
	})
}
