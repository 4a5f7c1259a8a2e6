package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "articles-api/docs" // swagger docs
)

// @title           Articles API
// @version         1.0
// @description     ニュース記事と親子レコードを管理する REST API
// @description     記事の作成・検索・ニックネーム更新・削除と、親子関係を持つレコードの管理を提供します。

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "articles-api",
	Short:         "articles-api - REST API for news articles and parent/child records",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// getVersion returns the application version from environment or build flags.
func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return version
}
