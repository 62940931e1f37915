package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/jobs"
)

var (
	flagSessions int
	flagTicks    int
	flagWorkers  int
	flagSeed     int64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless sessions",
	Long: `Run independent headless sessions with a seeded wandering player and
log one summary per session plus a total. The same seed always gives the same
summary.`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSessions, "sessions", 4, "Number of sessions")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Steps per session")
	simCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Concurrent sessions")
	simCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Seed of the first session; session i uses seed+i")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	pool := jobs.NewSessionPool(flagWorkers, flagSessions)
	defer pool.Close()

	fps := flagFPS
	if fps < 1 {
		fps = 60
	}
	reqs := make([]jobs.SessionRequest, flagSessions)
	for i := range reqs {
		reqs[i] = jobs.SessionRequest{
			ID:    i,
			Seed:  flagSeed + int64(i),
			Ticks: flagTicks,
			Dt:    1 / float32(fps),
			Cfg:   cfg,
		}
	}

	summaries, err := pool.RunAll(ctx, reqs)
	sort.Slice(summaries, func(a, b int) bool { return summaries[a].ID < summaries[b].ID })

	var kills, levelups int
	for _, s := range summaries {
		logger_config.Logger.Info("session",
			"id", s.ID,
			"seed", s.Seed,
			"elapsed", s.Elapsed,
			"level", s.Level,
			"hp", s.HP,
			"kills", s.Stats.EnemiesKilled,
			"fired", s.Stats.BulletsFired,
			"damage", s.Stats.DamageTaken,
			"enemiesLeft", s.Enemies,
		)
		kills += s.Stats.EnemiesKilled
		levelups += s.Stats.LevelUps
	}
	logger_config.Logger.Info("sim done", "sessions", len(summaries), "kills", kills, "levelups", levelups)

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
