package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var envFile string

// NewRootCommand returns the fooddelivery CLI with serve, migrate and seed.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fooddelivery",
		Short:         "Food delivery order service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file applied before reading the environment")

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	return root
}

func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func bootstrap() (Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return cfg, logger, db, nil
}

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the offer jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			if migrate {
				if err = postgres.Migrate(db); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := NewCompositionRoot(ctx, cfg, db, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					logger.Error("close composition root", "error", err)
				}
			}()

			e, err := app.NewRouter(ctx)
			if err != nil {
				return err
			}

			jobManager := app.NewJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server listening", "port", cfg.HTTPPort)
				serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
			}()

			select {
			case err = <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(*cobra.Command, []string) error {
			_, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return err
			}
			logger.Info("Migrations applied")
			return nil
		},
	}
}

// Riders are scattered around central Kathmandu.
const (
	seedLatitude  = 27.7172
	seedLongitude = 85.3240
)

func seedCmd() *cobra.Command {
	var riders int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated riders for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if riders <= 0 {
				return fmt.Errorf("--riders must be positive, got %d", riders)
			}

			cfg, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			app, err := NewCompositionRoot(cmd.Context(), cfg, db, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			return seedRiders(cmd.Context(), app.CreateCreateRiderCommandHandler(), riders)
		},
	}
	cmd.Flags().IntVar(&riders, "riders", 10, "number of riders to create")
	return cmd
}

func seedRiders(ctx context.Context, handler commands.CreateRiderCommandHandler, n int) error {
	fake := faker.New()
	vehicles := []string{"Bike", "Scooter", "Bicycle"}

	bar := progressbar.Default(int64(n), "seeding riders")
	for i := 0; i < n; i++ {
		vehicle := fake.RandomStringElement(vehicles) + " - " + fake.Numerify("BA ## PA ####")
		lat := seedLatitude + float64(fake.IntBetween(-300, 300))/10000
		lng := seedLongitude + float64(fake.IntBetween(-300, 300))/10000
		rating := 4 + float64(fake.IntBetween(0, 10))/10

		cmd, err := commands.NewCreateRiderCommand(kernel.NewUUID(), fake.Person().Name(),
			fake.Numerify("98########"), vehicle, lat, lng, rating)
		if err != nil {
			return err
		}
		if err = handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("create rider %d: %w", i+1, err)
		}
		_ = bar.Add(1)
	}
	return nil
}
