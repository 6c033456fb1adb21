package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newOpenCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "ファイルやフォルダを既定のアプリで開く",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.svc.OpenPath(args[0])
		},
	}
}

func newPickCommand(opts *globalOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "フォルダ選択ダイアログを表示し、選択したパスを出力する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			path, ok, err := app.svc.PickFolder(title)
			if err != nil {
				return err
			}
			if !ok {
				color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "キャンセルされました")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "フォルダを選択してください", "ダイアログのタイトル")

	return cmd
}

func newInfoCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "ファイルの詳細 (サイズ、更新日時、MIMEタイプ) を表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			d, err := app.svc.Inspect(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			key := color.New(color.FgCyan)
			kind := "ファイル"
			if d.IsDirectory {
				kind = "フォルダ"
			}
			key.Fprint(out, "名前:     ")
			fmt.Fprintln(out, d.Name)
			key.Fprint(out, "パス:     ")
			fmt.Fprintln(out, d.Path)
			key.Fprint(out, "種類:     ")
			fmt.Fprintln(out, kind)
			key.Fprint(out, "サイズ:   ")
			fmt.Fprintf(out, "%d bytes\n", d.Size)
			key.Fprint(out, "更新日時: ")
			fmt.Fprintln(out, d.ModTime.Format("2006-01-02 15:04:05"))
			if !d.IsDirectory {
				key.Fprint(out, "MIME:     ")
				fmt.Fprintln(out, d.MIMEType)
				key.Fprint(out, "バイナリ: ")
				fmt.Fprintln(out, d.IsBinary)
			}
			return nil
		},
	}
}
