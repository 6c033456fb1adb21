package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorite_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Favorite
		equal bool
	}{
		{
			name:  "名前とパスが一致",
			a:     Favorite{Name: "docs", Path: "/home/u/docs"},
			b:     Favorite{Name: "docs", Path: "/home/u/docs"},
			equal: true,
		},
		{
			name: "パスのみ一致",
			a:    Favorite{Name: "docs", Path: "/home/u/docs"},
			b:    Favorite{Name: "Docs", Path: "/home/u/docs"},
		},
		{
			name: "名前のみ一致",
			a:    Favorite{Name: "docs", Path: "/home/u/docs"},
			b:    Favorite{Name: "docs", Path: "/srv/docs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestFileNode_JSONChildrenIsNull(t *testing.T) {
	data, err := json.Marshal(FileNode{Name: "a", Path: "/a", IsDirectory: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","path":"/a","is_directory":true,"children":null}`, string(data))
}

func TestSearchResult_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(SearchResult{Name: "foo.txt", Path: "/a/foo.txt"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"foo.txt","path":"/a/foo.txt","is_directory":false}`, string(data))
}
