// Package cmd は folderbrowser のコマンドライン定義を提供します
package cmd

import (
	"fmt"

	"FolderBrowser/internal/infrastructure/config"
	"FolderBrowser/internal/infrastructure/filesystem"
	"FolderBrowser/internal/infrastructure/logging"
	"FolderBrowser/internal/infrastructure/platform"
	"FolderBrowser/internal/infrastructure/storage"
	"FolderBrowser/internal/interface/ui"
	"FolderBrowser/internal/usecase/browser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version はビルド時に -ldflags で埋め込まれます
var Version = "dev"

// globalOptions は全サブコマンド共通のフラグです
type globalOptions struct {
	configPath    string
	favoritesPath string
	logLevel      string
	noColor       bool
}

// application はコマンド実行時に組み立てる依存関係一式です
type application struct {
	cfg     *config.Config
	logger  *logging.ZapLogger
	scanner *filesystem.Scanner
	store   *storage.FavoritesStore
	svc     *browser.Service
}

// NewRootCommand は folderbrowser のルートコマンドを作成します
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "folderbrowser",
		Short: "フォルダの閲覧と名前検索を行うファイルブラウザ",
		Long: `folderbrowser はフォルダの一覧表示、幅優先の名前検索、
既定アプリでのオープン、お気に入りの管理を行います。

GUI (gui)、HTTP API (serve)、コマンドラインのいずれからも同じ操作を利用できます。`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "設定ファイルのパス (既定: "+config.DefaultFile()+")")
	flags.StringVar(&opts.favoritesPath, "favorites", "", "お気に入りファイルのパス")
	flags.StringVar(&opts.logLevel, "log-level", "", "ログレベル (debug, info, warn, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "色付き出力を無効にする")

	cmd.AddCommand(newGUICommand(opts))
	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newOpenCommand(opts))
	cmd.AddCommand(newPickCommand(opts))
	cmd.AddCommand(newInfoCommand(opts))
	cmd.AddCommand(newFavoritesCommand(opts))

	return cmd
}

// setup は設定を読み込み、サービスを組み立てます。ログは標準エラーへ出力します
func (o *globalOptions) setup(cmd *cobra.Command) (*application, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.favoritesPath != "" {
		cfg.FavoritesPath = o.favoritesPath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Output:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
	}

	scanner := filesystem.NewScanner(logger)
	store := storage.NewFavoritesStore(cfg.FavoritesPath, logger)
	svc := browser.NewService(
		scanner,
		platform.NewOpener(logger),
		ui.NewDirectorySelector(scanner),
		store,
		logger,
		cfg.SearchExclude,
	)

	return &application{
		cfg:     cfg,
		logger:  logger,
		scanner: scanner,
		store:   store,
		svc:     svc,
	}, nil
}

// Close はロガーをフラッシュします
func (a *application) Close() {
	_ = a.logger.Sync()
}
