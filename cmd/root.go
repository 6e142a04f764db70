package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shelfstats",
	Short: "shelfstats cli",
	Long:  `shelfstats computes chart ready statistics over a book collection`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

const (
	defaultRefreshInterval = time.Minute * 10
)

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SHELFSTATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "shelfstats.sqlite")

	viper.SetDefault("theme.mode", "light")

	viper.SetDefault("stats.refreshInterval", defaultRefreshInterval)
}
