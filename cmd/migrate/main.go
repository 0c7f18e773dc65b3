package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/nsara/website/internal/config"
	"github.com/nsara/website/internal/logging"
	"github.com/nsara/website/internal/repository"
)

var migrationDir string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the website",
	Long: `migrate applies the SQL files in the migrations directory.

Without a subcommand it behaves like "up".`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			return runIncremental(ctx, pool, migrationDir)
		})
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "差分マイグレーションを適用",
	RunE:  rootCmd.RunE,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "全テーブルを DROP し、集約スキーマで再作成",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			if err := runDropAll(ctx, pool, migrationDir); err != nil {
				return err
			}
			return runConsolidated(ctx, pool, migrationDir)
		})
	},
}

var freshCmd = &cobra.Command{
	Use:   "fresh",
	Short: "全テーブルを DROP し、全マイグレーションを順番に適用",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			if err := runDropAll(ctx, pool, migrationDir); err != nil {
				return err
			}
			return runIncremental(ctx, pool, migrationDir)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationDir, "dir", findMigrationDir(), "directory holding the *.sql files")
	rootCmd.AddCommand(upCmd, resetCmd, freshCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logging.Fatal("migrate failed", "error", err)
	}
}

func withPool(ctx context.Context, fn func(ctx context.Context, pool *pgxpool.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, RedactPII: cfg.RedactPII})

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, pool)
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}
