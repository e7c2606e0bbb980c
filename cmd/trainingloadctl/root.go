package main

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainingload/internal"
	"github.com/2beens/trainingload/internal/config"
	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/trainingload/activities"
	"github.com/2beens/trainingload/internal/trainingload/analysis"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ctlService interface {
	RebuildDailyLoads(ctx context.Context, userID int64, start time.Time, end *time.Time) (int, error)
	GetWeekSummary(ctx context.Context, userID int64, date time.Time) (*activities.WeekSummary, error)
	GetMuscleLoad(ctx context.Context, userID int64, date time.Time) (*analysis.Report, error)
}

// app holds the flags and the lazily connected dependencies of every command.
// Tests set service and migrate up front and no connection is made.
type app struct {
	env        string
	configPath string
	dotenvPath string
	userID     int64

	service ctlService
	migrate func(ctx context.Context) error
	pool    *pgxpool.Pool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trainingloadctl",
		Short: "Training load maintenance tool",
		Long: `trainingloadctl talks to the training load database directly.

EXAMPLES:

  trainingloadctl migrate                                # apply the schema
  trainingloadctl rebuild 2024-03-01 --end-date 2024-03-31
  trainingloadctl load 2024-03-06                        # ACWR and fatigue per muscle
  trainingloadctl week 2024-03-06 --user-id 2            # week summary`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.connect(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.pool != nil {
				a.pool.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.dotenvPath, "dotenv", ".env", "optional dotenv file with secrets")
	rootCmd.PersistentFlags().Int64Var(&a.userID, "user-id", 0, "athlete id (default: default_user_id from config)")

	rootCmd.AddCommand(
		newRebuildCmd(a),
		newLoadCmd(a),
		newWeekCmd(a),
		newMigrateCmd(a),
	)
	return rootCmd
}

func (a *app) connect(cmd *cobra.Command) error {
	if a.service != nil && a.migrate != nil {
		return nil
	}

	cfg, err := config.Load(a.env, a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	secrets, err := config.LoadSecrets(a.dotenvPath)
	if err != nil {
		return fmt.Errorf("load secrets: %w", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	a.pool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.DBPassword,
		MaxConns:   cfg.PostgresMaxConns,
	})
	if err != nil {
		return fmt.Errorf("db pool: %w", err)
	}

	if a.userID == 0 {
		a.userID = cfg.DefaultUserID
	}
	a.service = internal.NewActivitiesService(a.pool, cfg.BaselineRPE, nil)
	a.migrate = func(ctx context.Context) error {
		return db.Migrate(ctx, a.pool)
	}
	return nil
}
