package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taskhero/taskhero/internal/daemon"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked achievements")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements <hero-id>",
	Short: "Show a hero's achievements",
	Args:  cobra.ExactArgs(1),
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	hero, err := d.DB.GetHero(args[0])
	if err != nil {
		return err
	}

	eval := d.Aggregator.Evaluator()
	defs := eval.Catalog().Definitions()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACHIEVEMENT\tRARITY\tPROGRESS")
	shown := 0
	for _, def := range defs {
		unlocked := hero.HasAchievement(def.ID)
		if !unlocked && !achievementsAll {
			continue
		}
		shown++

		status := "unlocked"
		if !unlocked {
			progress, err := eval.ProgressFor(def.ID, hero)
			if err != nil {
				return err
			}
			status = fmt.Sprintf("%d/%d (%d%%)", progress.Current, progress.Required, progress.Percentage)
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", def.Icon, def.Title, def.Rarity, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if shown == 0 {
		fmt.Println("No achievements unlocked yet. Use --all to see what's ahead.")
	} else {
		fmt.Printf("\n%d of %d unlocked\n", len(hero.Achievements), len(defs))
	}
	return nil
}
