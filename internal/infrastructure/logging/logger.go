// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEntry はJSON出力される1行分のログを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（DEBUG, INFO, WARN, ERROR）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// Config はロガーの設定です
type Config struct {
	// Level は出力する最低レベルです（"debug", "info", "warn", "error"）
	Level string
	// Development が true の場合はコンソール形式で出力します
	Development bool
	// Output は出力先です。nil の場合は標準出力になります
	Output io.Writer
}

// ZapLogger は zap をバックエンドにした Logger の実装です
type ZapLogger struct {
	z *zap.Logger
}

// NewJSONLogger は writer にJSON形式で全レベルを出力するロガーを作成します
func NewJSONLogger(writer io.Writer) *ZapLogger {
	l, err := New(Config{Level: "debug", Output: writer})
	if err != nil {
		return NewNop()
	}
	return l
}

// New は設定からロガーを作成します
func New(cfg Config) (*ZapLogger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stdout
	}

	var encoder zapcore.Encoder
	if cfg.Development {
		encoder = zapcore.NewConsoleEncoder(encoderConfig(true))
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig(false))
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), zap.NewAtomicLevelAt(level))
	return &ZapLogger{z: zap.New(core)}, nil
}

// NewNop は何も出力しないロガーを作成します
func NewNop() *ZapLogger {
	return &ZapLogger{z: zap.NewNop()}
}

// Log はレベル文字列に応じてメッセージを出力します。
// 未知のレベルは INFO 扱い、ERROR より上 (DPANIC, PANIC, FATAL) は ERROR として出力し、
// プロセスを終了させることはありません
func (l *ZapLogger) Log(level, message string, err error) {
	var fields []zap.Field
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	lvl, parseErr := parseLevel(level)
	switch {
	case parseErr != nil:
		lvl = zapcore.InfoLevel
	case lvl > zapcore.ErrorLevel:
		lvl = zapcore.ErrorLevel
	}

	if ce := l.z.Check(lvl, message); ce != nil {
		ce.Write(fields...)
	}
}

// Zap は構造化フィールドを使いたい呼び出し側向けに zap.Logger を返します
func (l *ZapLogger) Zap() *zap.Logger {
	return l.z
}

// Sync はバッファされたログを書き出します
func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}

// parseLevel は "info" や "INFO" を zapcore.Level に変換します
func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		NameKey:        zapcore.OmitKey,
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if development {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}
