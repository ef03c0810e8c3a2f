package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"farmtrack/config"
	"farmtrack/entities"
	cropRepoImp "farmtrack/pkg/crop/repositoryImp"
	"farmtrack/pkg/logger"
	planRepoImp "farmtrack/pkg/rotation/repositoryImp"
	rotationSvcImp "farmtrack/pkg/rotation/serviceImp"
	"farmtrack/pkg/seed"
)

// app carries what the persistent pre-run resolves for every subcommand.
type app struct {
	cfgFile string
	cfg     config.AppConfig
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "farmtrack",
		Short: "Crop records, rotation plans and soil-health charts for small farms",
		Long: `farmtrack keeps the crop records of a set of farms in memory, classifies
them into rotation plans and harvested history, and derives soil-health
scores, yield projections and chart data from the history.

Records are read from the seed sources at start-up. Changes made through
the API live only as long as the process; nothing is written back.`,
		PersistentPreRunE: a.bootstrap,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./farmtrack.yaml when present)")
	pf.StringSlice("seed", nil, "seed source: .json, .yaml, .csv, .xlsx, .db file or postgres:// URL (repeatable)")
	pf.String("log-mode", "", "log mode: dev or prod")

	root.AddCommand(
		a.serveCmd(),
		a.historyCmd(),
		a.chartsCmd(),
		a.plansCmd(),
		a.seedCmd(),
	)
	return root
}

func (a *app) bootstrap(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg
	if a.log, err = logger.New(cfg.LogMode); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if cfg.EnvFile == "" {
		a.log.Debug("no .env file loaded")
	}
	a.log.Debug("configuration loaded", "port", cfg.Port, "tz", cfg.Timezone, "seed_sources", len(cfg.SeedPaths))
	return nil
}

func (a *app) loadRecords(ctx context.Context) ([]entities.CropRecord, error) {
	return seed.Load(ctx, a.log, a.cfg.SeedPaths...)
}

func (a *app) loadStore(ctx context.Context) (*cropRepoImp.MemoryStore, error) {
	recs, err := a.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return cropRepoImp.NewMemoryStore(recs)
}

func (a *app) rotationService(store *cropRepoImp.MemoryStore) *rotationSvcImp.PlanSvc {
	return rotationSvcImp.NewPlanService(planRepoImp.New(store), a.log,
		rotationSvcImp.WithLocation(a.cfg.Location()))
}

// farmFlag returns the --farm value, or nil when the flag was not given.
func farmFlag(cmd *cobra.Command) (*uint, error) {
	if !cmd.Flags().Changed("farm") {
		return nil, nil
	}
	id, err := cmd.Flags().GetUint("farm")
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, fmt.Errorf("--farm must be a positive farm id")
	}
	return &id, nil
}
