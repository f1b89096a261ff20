package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/visitaup/visitas-api/internal/cep"
	"github.com/visitaup/visitas-api/internal/config"
	"github.com/visitaup/visitas-api/internal/db"
	"github.com/visitaup/visitas-api/internal/distance"
	"github.com/visitaup/visitas-api/internal/logging"
	"github.com/visitaup/visitas-api/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  "Start the visitas HTTP server. Configuration comes from the environment: VISITAS_DB, PORT, VIACEP_BASE_URL, DISTANCE_SERVICE_URL and VISITAS_DEV_MODE.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: $PORT or 8080)")

	return cmd
}

func runServe(port int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logging.Setup(cfg.DevMode)

	if port == 0 {
		port = cfg.Port
	}
	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeDB(database)

	srv := web.NewServer(
		database,
		cep.NewClient(cfg.ViaCEPBaseURL),
		distance.NewClient(cfg.DistanceServiceURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting visitas server", "port", port, "db", dbPath)
	return srv.ListenAndServe(ctx, port)
}
