// Package config はアプリケーション設定の読み込みを提供します。
//
// 優先順位は 既定値 < YAMLファイル < 環境変数(FOLDERBROWSER_*) です
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// AppName は設定ディレクトリ名などに使うアプリケーション名です
const AppName = "folderbrowser"

// EnvPrefix は環境変数のプレフィックスです
const EnvPrefix = "FOLDERBROWSER"

// Config はアプリケーション全体の設定です。
//
// 環境変数名は FOLDERBROWSER_<節>_<フィールド> です (例: FOLDERBROWSER_SERVER_PORT)。
// プレフィックス無しの変数 (PORT や LOG_LEVEL など) は参照しません
type Config struct {
	// FavoritesPath はお気に入りを保存するJSONファイルのパスです
	FavoritesPath string `yaml:"favorites_path" split_words:"true"`
	// HomeFolder は起動時に表示するフォルダです
	HomeFolder string `yaml:"home_folder" split_words:"true"`
	// SearchExclude は検索時に展開しないディレクトリの doublestar パターンです
	SearchExclude []string `yaml:"search_exclude" split_words:"true"`

	Logging LogConfig    `yaml:"logging"`
	Server  ServerConfig `yaml:"server"`
}

// LogConfig はログ出力の設定です
type LogConfig struct {
	Level       string `yaml:"level" split_words:"true"`
	Development bool   `yaml:"development" split_words:"true"`
}

// ServerConfig はHTTP APIの設定です
type ServerConfig struct {
	Host        string   `yaml:"host" split_words:"true"`
	Port        int      `yaml:"port" split_words:"true"`
	CORSOrigins []string `yaml:"cors_origins" split_words:"true"`
}

// Addr は host:port 形式のアドレスを返します
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultDir はユーザー設定ディレクトリ配下のアプリ用ディレクトリを返します
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, AppName)
}

// Default は既定の設定を返します
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		FavoritesPath: filepath.Join(DefaultDir(), "favorites.json"),
		HomeFolder:    home,
		Logging: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        8710,
			CORSOrigins: []string{"*"},
		},
	}
}

// DefaultFile は既定の設定ファイルのパスを返します
func DefaultFile() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load は既定値に設定ファイルと環境変数を重ねて返します。
// path が空の場合は DefaultFile を使い、ファイルが無ければ読み飛ばします
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルの解析に失敗しました %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("環境変数の読み込みに失敗しました: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を確認します
func (c *Config) Validate() error {
	if c.FavoritesPath == "" {
		return errors.New("favorites_path が空です")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port が範囲外です: %d", c.Server.Port)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level が不正です: %q", c.Logging.Level)
	}
	return nil
}
