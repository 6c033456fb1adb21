package cmd

import (
	"encoding/json"
	"fmt"

	"FolderBrowser/internal/usecase/browser"
	"FolderBrowser/internal/usecase/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	exclude   []string
	max       int
	reportDir string
	asJSON    bool
}

func newSearchCommand(opts *globalOptions) *cobra.Command {
	so := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <folder> <term>",
		Short: "フォルダ以下を名前で検索する",
		Long: `フォルダ以下を幅優先で探索し、名前に検索語を含む (大文字小文字を区別しない)
ファイルとフォルダを探索順に表示します。

  --exclude  展開しないフォルダの doublestar パターン (例: "**/node_modules")
  --max      結果の上限 (0 は無制限)
  --report   結果を output_YYYYMMDD_HHMMSS.txt として書き出すフォルダ`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, so, args[0], args[1])
		},
	}

	cmd.Flags().StringSliceVarP(&so.exclude, "exclude", "x", nil, "除外パターン (複数指定可)")
	cmd.Flags().IntVarP(&so.max, "max", "n", 0, "結果の上限")
	cmd.Flags().StringVar(&so.reportDir, "report", "", "レポートの出力先フォルダ")
	cmd.Flags().BoolVar(&so.asJSON, "json", false, "JSON で出力する")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *globalOptions, so *searchOptions, folder, term string) error {
	app, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	results, err := app.svc.Search(cmd.Context(), browser.SearchRequest{
		FolderPath: folder,
		SearchTerm: term,
		Exclude:    so.exclude,
		MaxResults: so.max,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if so.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		dirColor := color.New(color.FgCyan)
		for _, r := range results {
			if r.IsDirectory {
				dirColor.Fprintf(out, "[DIR]  %s\n", r.Path)
			} else {
				fmt.Fprintf(out, "[FILE] %s\n", r.Path)
			}
		}
		color.New(color.FgHiBlack).Fprintf(cmd.ErrOrStderr(), "%d 件\n", len(results))
	}

	if so.reportDir != "" {
		path, err := report.NewGenerator().Generate(so.reportDir, folder, term, results)
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "レポートを生成しました: %s\n", path)
	}
	return nil
}
