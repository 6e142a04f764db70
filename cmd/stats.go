package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kasuboski/shelfstats/config"
	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/stats"
	"github.com/kasuboski/shelfstats/pkg/storage/sqlite"
	"github.com/kasuboski/shelfstats/pkg/theme"
)

var (
	statsLibrary int64
	statsRaw     bool
	statsMode    string
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:       "stats [kind]",
	Short:     "print statistics",
	Long:      `compute statistics over the stored books once and print them as JSON`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: kindNames(),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatalw("failed to create storage connection", "error", err)
		}
		if err := store.RunMigrations(ctx); err != nil {
			log.Fatalw("failed to migrate database", "error", err)
		}

		books, err := store.ListBooks(ctx)
		if err != nil {
			log.Fatal(err)
		}

		var library *book.LibraryID
		if cmd.Flags().Changed("library") {
			id := book.LibraryID(statsLibrary)
			library = &id
		}

		kinds := stats.Kinds
		if len(args) == 1 {
			kind, err := stats.ParseKind(args[0])
			if err != nil {
				log.Fatal(err)
			}
			kinds = []stats.Kind{kind}
		}

		mode, err := theme.ParseMode(statsMode)
		if err != nil {
			log.Fatal(err)
		}

		if err := printStats(os.Stdout, books, library, kinds, mode, statsRaw); err != nil {
			log.Fatal(err)
		}
	},
}

// printStats writes one JSON document per kind: the styled view model, or the
// raw aggregation result when raw is set
func printStats(w io.Writer, books []book.Book, library *book.LibraryID, kinds []stats.Kind, mode theme.Mode, raw bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	for _, kind := range kinds {
		result, err := stats.Compute(kind, books, library)
		if err != nil {
			return err
		}

		var out any = theme.Restyle(result.ViewModel(), mode)
		if raw {
			out = result
		}

		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to write %s: %w", kind, err)
		}
	}
	return nil
}

func kindNames() []string {
	names := make([]string, len(stats.Kinds))
	for i, k := range stats.Kinds {
		names[i] = string(k)
	}
	return names
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int64VarP(&statsLibrary, "library", "l", 0, "only count books of this library")
	statsCmd.Flags().BoolVar(&statsRaw, "raw", false, "print raw aggregation results instead of view models")
	statsCmd.Flags().StringVarP(&statsMode, "mode", "m", string(theme.Light), "theme mode of the printed view models")
}
