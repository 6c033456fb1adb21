package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Inspect(t *testing.T) {
	scanner := NewScanner(&mockLogger{})
	root := t.TempDir()

	textFile := filepath.Join(root, "note.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("hello\nworld\n"), 0644))
	binaryFile := filepath.Join(root, "blob.bin")
	require.NoError(t, os.WriteFile(binaryFile, []byte{0x00, 0x01, 0x02, 0x03}, 0644))

	t.Run("テキストファイル", func(t *testing.T) {
		details, err := scanner.Inspect(textFile)
		require.NoError(t, err)
		assert.Equal(t, "note.txt", details.Name)
		assert.Equal(t, int64(12), details.Size)
		assert.False(t, details.IsBinary)
		assert.True(t, strings.HasPrefix(details.MIMEType, "text/plain"), details.MIMEType)
	})

	t.Run("バイナリファイル", func(t *testing.T) {
		details, err := scanner.Inspect(binaryFile)
		require.NoError(t, err)
		assert.True(t, details.IsBinary)
		assert.NotEmpty(t, details.MIMEType)
	})

	t.Run("ディレクトリ", func(t *testing.T) {
		details, err := scanner.Inspect(root)
		require.NoError(t, err)
		assert.True(t, details.IsDirectory)
		assert.Empty(t, details.MIMEType)
	})

	t.Run("存在しないパス", func(t *testing.T) {
		_, err := scanner.Inspect(filepath.Join(root, "missing"))
		var ioErr *IOError
		assert.ErrorAs(t, err, &ioErr)
	})
}

func TestScanner_isBinaryFile(t *testing.T) {
	scanner := NewScanner(&mockLogger{})

	tests := []struct {
		name     string
		content  []byte
		expected bool
	}{
		{
			name:     "テキストファイル",
			content:  []byte("This is a text file\nwith multiple lines\n"),
			expected: false,
		},
		{
			name:     "NULLを含むバイナリファイル",
			content:  []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x00, 0x57, 0x6f, 0x72, 0x6c, 0x64},
			expected: true,
		},
		{
			name:     "制御文字を含むバイナリファイル",
			content:  []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x03, 0x57, 0x6f, 0x72, 0x6c, 0x64},
			expected: true,
		},
		{
			name:     "空のファイル",
			content:  []byte{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanner.isBinaryFile(tt.content))
		})
	}
}
