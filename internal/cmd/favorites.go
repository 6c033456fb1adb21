package cmd

import (
	"fmt"
	"path/filepath"

	"FolderBrowser/internal/domain/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFavoritesCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "お気に入りを管理する",
	}

	cmd.AddCommand(newFavoritesListCommand(opts))
	cmd.AddCommand(newFavoritesAddCommand(opts))
	cmd.AddCommand(newFavoritesRemoveCommand(opts))

	return cmd
}

func newFavoritesListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "お気に入りを一覧表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			favorites, err := app.svc.LoadFavorites()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(favorites) == 0 {
				color.New(color.FgHiBlack).Fprintln(cmd.ErrOrStderr(), "お気に入りはありません")
				return nil
			}
			name := color.New(color.FgYellow, color.Bold)
			for _, f := range favorites {
				name.Fprint(out, f.Name)
				fmt.Fprintf(out, "\t%s\n", f.Path)
			}
			return nil
		},
	}
}

func newFavoritesAddCommand(opts *globalOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "お気に入りに追加する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			fav, err := favoriteFromArgs(args[0], name)
			if err != nil {
				return err
			}
			added, err := app.svc.AddFavorite(fav)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "登録済みです: %s\n", fav.Path)
				return nil
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "追加しました: %s\n", fav.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "表示名 (既定: フォルダ名)")

	return cmd
}

func newFavoritesRemoveCommand(opts *globalOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "remove <path>",
		Aliases: []string{"rm"},
		Short:   "お気に入りから削除する",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			fav, err := favoriteFromArgs(args[0], name)
			if err != nil {
				return err
			}
			removed, err := app.svc.RemoveFavorite(fav)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("お気に入りに登録されていません: %s", fav.Path)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "削除しました: %s\n", fav.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "表示名 (既定: フォルダ名)")

	return cmd
}

// favoriteFromArgs は絶対パスと表示名からお気に入りを作ります
func favoriteFromArgs(path, name string) (model.Favorite, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Favorite{}, fmt.Errorf("パスの解決に失敗しました: %w", err)
	}
	if name == "" {
		name = filepath.Base(abs)
	}
	return model.Favorite{Name: name, Path: abs}, nil
}
