package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/hunter/internal/scheduler"
	"github.com/wonny/hunter/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Scheduler management",
	Long: `Starts the scheduler daemon or inspects registered jobs.

Registered jobs:
- valuation_run: daily pipeline pass (VALUATION_CRON, default weekdays 5 PM)

Subcommands:
  start   - start the scheduler daemon
  list    - list registered jobs

Example:
  go run ./cmd/hunter scheduler start
  go run ./cmd/hunter scheduler list`,
}

var schedulerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the scheduler daemon",
	Long: `Starts the scheduler and blocks until Ctrl+C. The valuation job
runs on its cron schedule; the artifact is rewritten after every pass.`,
	RunE: runScheduler,
}

var schedulerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered jobs",
	RunE:  listJobs,
}

func runScheduler(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	sched, err := buildScheduler(app)
	if err != nil {
		return err
	}

	sched.Start()
	app.logger.Info("Scheduler daemon running, Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	sched, err := buildScheduler(app)
	if err != nil {
		return err
	}

	for _, name := range sched.Jobs() {
		fmt.Println(name)
	}
	return nil
}

// buildScheduler registers all jobs on a fresh scheduler
func buildScheduler(app *app) (*scheduler.Scheduler, error) {
	sched := scheduler.New(app.logger)

	job := jobs.NewValuationJob(app.pipeline, app.cfg.ValuationCron, app.logger)
	if err := sched.AddJob(job); err != nil {
		return nil, fmt.Errorf("register %s: %w", job.Name(), err)
	}

	return sched, nil
}

func init() {
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	rootCmd.AddCommand(schedulerCmd)
}
