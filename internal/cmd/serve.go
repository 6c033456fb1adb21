package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"FolderBrowser/internal/interface/api"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "HTTP API を起動する",
		Long: `Web フロントエンド向けの HTTP API を起動します。

  POST /api/read_directory    フォルダ直下の一覧
  POST /api/search_directory  名前検索
  POST /api/open_file         ファイルを既定アプリで開く
  POST /api/open_folder       フォルダを開く
  POST /api/browse_folder     フォルダ選択ダイアログ
  GET  /api/favorites         お気に入りの読み込み
  PUT  /api/favorites         お気に入りの保存
  POST /api/inspect           ファイルの詳細`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if cmd.Flags().Changed("host") {
				app.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				app.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(app.svc, app.logger.Zap(), app.cfg.Server)
			return api.Serve(ctx, app.cfg.Server.Addr(), router, app.logger.Zap())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "待ち受けるホスト")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "待ち受けるポート")

	return cmd
}
