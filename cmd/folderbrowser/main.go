// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"fmt"
	"os"

	"FolderBrowser/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}
