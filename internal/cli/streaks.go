package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/daemon"
	"github.com/taskhero/taskhero/internal/domain"
)

func init() {
	rootCmd.AddCommand(streaksCmd)
}

var streaksCmd = &cobra.Command{
	Use:   "streaks <hero-id>",
	Short: "Show a hero's streaks",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreaks,
}

func runStreaks(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	hero, err := d.DB.GetHero(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STREAK\tCURRENT\tLONGEST\tSTATUS")
	for _, kind := range []domain.StreakKind{
		domain.StreakDailyMissions,
		domain.StreakXPGain,
		domain.StreakLogin,
	} {
		st := hero.Streak(kind)
		status := progression.StatusOf(st, now)
		state := "broken"
		switch {
		case st.LastActive.IsZero():
			state = "not started"
		case status.IsActive && status.DaysUntilReset == 1:
			state = "expires tomorrow"
		case status.IsActive:
			state = "active"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", kind, st.Current, st.Longest, state)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	daily := hero.Streak(domain.StreakDailyMissions)
	if milestone, ok := progression.NextStreakMilestone(daily.Current); ok {
		fmt.Printf("\nNext milestone: %s at %d days (+%d XP, +%d gold)\n",
			milestone.Title, milestone.Days, milestone.Reward.XP, milestone.Reward.Gold)
	}
	return nil
}
