package logging

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel string
		message   string
		err       error
	}{
		{
			name:      "エラーなしのログ",
			level:     "info",
			wantLevel: "INFO",
			message:   "テストメッセージ",
		},
		{
			name:      "エラーありのログ",
			level:     "ERROR",
			wantLevel: "ERROR",
			message:   "エラーメッセージ",
			err:       errors.New("テストエラー"),
		},
		{
			name:      "FATALはERRORとして出力し終了しない",
			level:     "FATAL",
			wantLevel: "ERROR",
			message:   "fatal message",
		},
		{
			name:      "PANICはERRORとして出力しパニックしない",
			level:     "panic",
			wantLevel: "ERROR",
			message:   "panic message",
		},
		{
			name:      "DPANICはERRORとして出力",
			level:     "DPANIC",
			wantLevel: "ERROR",
			message:   "dpanic message",
		},
		{
			name:      "未知のレベルはINFO扱い",
			level:     "verbose",
			wantLevel: "INFO",
			message:   "unknown level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.Log(tt.level, tt.message, tt.err)

			var logEntry LogEntry
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))

			assert.Equal(t, tt.message, logEntry.Message)
			assert.Equal(t, tt.wantLevel, logEntry.Level)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), logEntry.Error)
			} else {
				assert.Empty(t, logEntry.Error)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, logEntry.Timestamp)
			require.NoError(t, err)
			assert.Less(t, time.Since(logTime), time.Minute)
		})
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf strings.Builder
	logger, err := New(Config{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Log("DEBUG", "dropped", nil)
	logger.Log("INFO", "dropped too", nil)
	logger.Log("WARN", "kept", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	assert.NotPanics(t, func() {
		logger.Log("ERROR", "nothing", errors.New("x"))
	})
	assert.NotNil(t, logger.Zap())
}
