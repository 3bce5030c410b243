package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/daemon"
)

func init() {
	heroCmd.AddCommand(heroCreateCmd)
	heroCmd.AddCommand(heroListCmd)
	heroCmd.AddCommand(heroShowCmd)
	heroCmd.AddCommand(heroDeleteCmd)
	rootCmd.AddCommand(heroCmd)
}

var heroCmd = &cobra.Command{
	Use:   "hero",
	Short: "Manage heroes",
}

var heroCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new hero",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHeroCreate,
}

var heroListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List heroes",
	RunE:    runHeroList,
}

var heroShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a hero's progression",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeroShow,
}

var heroDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a hero",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeroDelete,
}

func runHeroCreate(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	name := d.Config.Progression.DefaultHeroName
	if len(args) > 0 {
		name = args[0]
	}

	hero, err := d.DB.CreateHero(name, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Created hero %s (%s)\n", hero.Name, hero.ID)
	return nil
}

func runHeroList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	heroes, err := d.DB.ListHeroes()
	if err != nil {
		return err
	}

	if len(heroes) == 0 {
		fmt.Println("No heroes yet. Run 'taskhero hero create <name>' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLEVEL\tXP\tGOLD")
	for _, h := range heroes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", h.ID, h.Name, h.Level, h.XP, h.Gold)
	}
	return w.Flush()
}

func runHeroShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	hero, err := d.DB.GetHero(args[0])
	if err != nil {
		return err
	}

	title := progression.TitleForLevel(hero.Level)
	prog := progression.ProgressForXP(hero.XP)

	fmt.Printf("%s %s — %s\n", title.Icon, hero.Name, title.Name)
	fmt.Printf("  Level %d (%d XP, %.1f%% to next)\n", hero.Level, hero.XP, prog.Percentage)
	fmt.Printf("  Gold: %d\n", hero.Gold)
	fmt.Printf("  Achievements: %d unlocked\n", len(hero.Achievements))
	if next, ok := progression.NextTitle(hero.Level); ok {
		fmt.Printf("  Next title: %s at level %d\n", next.Name, next.Level)
	}
	return nil
}

func runHeroDelete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.DB.DeleteHero(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
