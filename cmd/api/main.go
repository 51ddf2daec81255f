package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vaughan-dsouza/BeGoForms/internal/config"
	"github.com/vaughan-dsouza/BeGoForms/internal/db"
	"github.com/vaughan-dsouza/BeGoForms/internal/handlers"
	"github.com/vaughan-dsouza/BeGoForms/internal/logging"
	"github.com/vaughan-dsouza/BeGoForms/internal/server"
	"github.com/vaughan-dsouza/BeGoForms/internal/utils"
	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
	"github.com/vaughan-dsouza/BeGoForms/internal/views"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Blog post forms service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		if envErr != nil {
			logger.Debug("No .env file found")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the post pages and JSON API",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the posts table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, conn *sqlx.DB) error {
			if err := db.Migrate(ctx, conn); err != nil {
				return err
			}
			logger.Info("schema up to date", zap.String("driver", conn.DriverName()))
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, conn *sqlx.DB) error {
			if err := db.Migrate(ctx, conn); err != nil {
				return err
			}
			n, err := db.Seed(ctx, db.NewPosts(conn))
			if err != nil {
				return err
			}
			logger.Info("seeded posts", zap.Int("count", n))
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [client]",
	Short: "Issue a bearer token for the JSON API",
	Long: `Signs a token with the configured ACCESS_SECRET. The client name becomes
the token subject. The API only checks tokens when a secret is configured.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, exp, err := utils.GenerateToken(args[0], cfg.API.Secret, cfg.API.TokenTTL)
		if err != nil {
			return fmt.Errorf("token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		logger.Debug("token issued", zap.String("client", args[0]), zap.Time("expires", time.Unix(exp, 0)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default config.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func withDB(ctx context.Context, fn func(context.Context, *sqlx.DB) error) error {
	conn, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(ctx, conn)
}

func serve(cmd *cobra.Command, args []string) error {
	return withDB(cmd.Context(), func(ctx context.Context, conn *sqlx.DB) error {
		logger.Info("database connected", zap.String("driver", cfg.Database.Driver))

		if cfg.Database.AutoMigrate {
			if err := db.Migrate(ctx, conn); err != nil {
				return err
			}
		}

		v, err := validation.New(cfg.Validation.Policy)
		if err != nil {
			return err
		}
		renderer, err := views.NewRenderer()
		if err != nil {
			return err
		}

		h := handlers.NewHandler(db.NewPosts(conn), v, renderer, logger)
		router := server.NewRouter(h, cfg.API.Secret, logger)

		logger.Info("starting server",
			zap.String("addr", cfg.Addr()),
			zap.String("validation", cfg.Validation.Policy),
			zap.Bool("api_auth", cfg.API.Secret != ""))
		return server.Run(ctx, cfg, router, logger)
	})
}
