package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kasuboski/shelfstats/config"
	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/storage/sqlite"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <books.json>",
	Short: "import books into storage",
	Long:  `import a JSON array of books into storage, replacing books with the same id`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalw("failed to open books", "error", err)
		}
		defer f.Close()

		books, err := book.Decode(f)
		if err != nil {
			log.Fatal(err)
		}

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatalw("failed to create storage connection", "error", err)
		}

		if err := store.RunMigrations(ctx); err != nil {
			log.Fatalw("failed to migrate database", "error", err)
		}

		ids, err := store.UpsertBooks(ctx, books...)
		if err != nil {
			log.Fatal(err)
		}

		log.Infow("imported books", "count", len(ids), "file", args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
