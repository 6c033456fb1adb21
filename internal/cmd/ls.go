package cmd

import (
	"encoding/json"
	"fmt"

	"FolderBrowser/internal/usecase/browser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCommand(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "ls [folder]",
		Aliases: []string{"list"},
		Short:   "フォルダ直下の一覧を表示する",
		Long: `フォルダ直下のファイルとフォルダを自然順で表示します。
フォルダを省略した場合は設定のホームフォルダを表示します。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			folder := app.cfg.HomeFolder
			if len(args) == 1 {
				folder = args[0]
			}

			nodes, err := app.svc.ListDirectory(cmd.Context(), folder)
			if err != nil {
				return err
			}
			browser.SortNodes(nodes)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(nodes)
			}

			dirColor := color.New(color.FgBlue, color.Bold)
			for _, node := range nodes {
				if node.IsDirectory {
					dirColor.Fprintf(out, "%s/\n", node.Name)
				} else {
					fmt.Fprintln(out, node.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON で出力する")

	return cmd
}
