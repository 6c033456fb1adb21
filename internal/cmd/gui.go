package cmd

import (
	"FolderBrowser/internal/gui"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

// appID は Fyne の設定保存に使うアプリケーションIDです
const appID = "io.github.folderbrowser"

func newGUICommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [folder]",
		Short: "GUIウィンドウでフォルダを閲覧する",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			home := app.cfg.HomeFolder
			if len(args) == 1 {
				home = args[0]
			}

			w := gui.NewWindow(fyneapp.NewWithID(appID), app.svc, app.scanner, app.logger)
			w.ShowAndRun(home)
			return nil
		},
	}
}
