package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasuboski/shelfstats/pkg/storage/sqlite"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var outputDirectory string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `generate database code from the embedded migrations`,
	Run: func(cmd *cobra.Command, args []string) {
		const tmp = "tmp.sqlite"

		tmpStorage, err := sqlite.New(context.Background(), tmp)
		if err != nil {
			log.Fatal(err)
		}
		defer os.Remove(tmp)

		err = tmpStorage.RunMigrations(context.Background())
		if err != nil {
			log.Fatal(err)
		}

		err = jet.GenerateDSN(tmp, outputDirectory)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("successfully generated to %s", outputDirectory)
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}
