package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kasuboski/shelfstats/config"
	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/manager"
	"github.com/kasuboski/shelfstats/pkg/storage/sqlite"
	"github.com/kasuboski/shelfstats/pkg/theme"
	"github.com/kasuboski/shelfstats/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the stats server",
	Long:  `load the collection, keep every statistic up to date and serve them over http`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}
		if err := config.Validate(cfg); err != nil {
			log.Fatal(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatalw("failed to create storage connection", "error", err)
		}

		err = store.RunMigrations(ctx)
		if err != nil {
			log.Fatalw("failed to migrate database", "error", err)
		}

		m, err := manager.New(store, cfg, log)
		if err != nil {
			log.Fatalw("failed to create dashboard", "error", err)
		}

		if viper.ConfigFileUsed() != "" {
			viper.OnConfigChange(themeWatcher(viper.GetViper(), m, log))
			viper.WatchConfig()
		}

		srv := server.New(log, m)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return m.Run(ctx)
		})
		g.Go(func() error {
			return srv.Serve(ctx, cfg.Server.Port)
		})

		if err := g.Wait(); err != nil {
			log.Error(err)
		}
	},
}

type themeSetter interface {
	Theme() theme.Mode
	SetTheme(theme.Mode)
}

// themeWatcher follows theme.mode in the config file. Invalid values are
// ignored and the current mode is kept.
func themeWatcher(v *viper.Viper, m themeSetter, log *zap.SugaredLogger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		mode, err := theme.ParseMode(v.GetString("theme.mode"))
		if err != nil {
			log.Warnw("ignoring theme change", "file", e.Name, "error", err)
			return
		}

		if mode == m.Theme() {
			return
		}

		m.SetTheme(mode)
		log.Infow("theme changed", "mode", mode)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
