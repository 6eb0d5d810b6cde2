package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/NabeelSaddique/Nano-Particle-Simulation/docs"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/handlers"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/logger"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/server"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveConfigDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the simulation HTTP server",
	Long:  "serve exposes the REST API, the live WebSocket channel, the Swagger UI and the embedded lab page.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(serveConfigDir); err != nil {
			return err
		}
		log := logger.Get(viper.GetString("log.level"))

		services := service.NewService()
		apiHandler := handlers.NewHandler(services, log)

		srv := &server.Server{}
		go func() {
			if err := srv.Run(viper.GetString("port"), apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalw("error starting server", "err", err)
			}
		}()
		log.Infow("server started", "port", viper.GetString("port"))

		waitForShutdown(srv, log)
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigDir, "config-dir", "configs", "Directory containing config.yml")
}

// loadConfig reads configs/config.yml. A missing file is fine: the
// defaults below cover everything the server needs.
func loadConfig(dir string) error {
	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// waitForShutdown blocks on termination signals, then drains in-flight
// requests before returning.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
