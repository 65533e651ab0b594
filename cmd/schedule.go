package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"media-orbit/core/schedule"
	"media-orbit/feature/notify"
	syncfeature "media-orbit/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the sync scheduler daemon",
	Long: `Runs the daily sync and reminder jobs at their configured trigger times
until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()

		orch := a.syncFeature().Orchestrator()
		checker := notify.NewChecker(a.db, nil, logg)

		jobs, err := buildJobs(a, orch, checker)
		if err != nil {
			logg.Fatal("Invalid schedule configuration", zap.Error(err))
		}

		poll := time.Duration(a.cfg.Sync.PollSeconds) * time.Second
		if poll <= 0 {
			poll = time.Minute
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		schedule.New(jobs, poll, nil, logg).Start(ctx)
	},
}

func buildJobs(a *app, orch *syncfeature.Orchestrator, checker *notify.Checker) ([]schedule.Job, error) {
	entries := []struct {
		name    string
		trigger string
		run     func(ctx context.Context) error
	}{
		{"sync-all", a.cfg.Sync.FullAt, func(ctx context.Context) error {
			orch.SyncAll(ctx)
			return nil
		}},
		{"sync-movies", a.cfg.Sync.MoviesAt, func(ctx context.Context) error {
			_, err := orch.SyncMovies(ctx)
			return err
		}},
		{"sync-series", a.cfg.Sync.SeriesAt, func(ctx context.Context) error {
			_, err := orch.SyncSeries(ctx)
			return err
		}},
		{"sync-animes", a.cfg.Sync.AnimeAt, func(ctx context.Context) error {
			_, err := orch.SyncAnime(ctx)
			return err
		}},
		{"sync-games", a.cfg.Sync.GamesAt, func(ctx context.Context) error {
			_, err := orch.SyncGames(ctx)
			return err
		}},
		{"release-reminders", a.cfg.Sync.RemindersAt, checker.Run},
	}

	jobs := make([]schedule.Job, 0, len(entries))
	for _, e := range entries {
		hour, minute, err := schedule.ParseTrigger(e.trigger)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", e.name, err)
		}
		jobs = append(jobs, schedule.Job{
			Name:   e.name,
			Hour:   hour,
			Minute: minute,
			Run:    e.run,
		})
	}
	return jobs, nil
}

func init() {
	RootCmd.AddCommand(scheduleCmd)
}
