package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/daemon"
	"github.com/taskhero/taskhero/internal/domain"
)

func init() {
	completeCmd.Flags().StringVar(&completeDifficulty, "difficulty", "easy", "Mission difficulty: easy, medium, hard")
	completeCmd.Flags().StringVar(&completeType, "type", "daily", "Mission type: daily, weekly, campaign")
	rootCmd.AddCommand(completeCmd)
}

var (
	completeDifficulty string
	completeType       string
)

var completeCmd = &cobra.Command{
	Use:   "complete <hero-id>",
	Short: "Record a completed mission for a hero",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	hero, err := d.DB.GetHero(args[0])
	if err != nil {
		return err
	}

	meta := domain.MissionMeta{
		Difficulty:  domain.Difficulty(completeDifficulty),
		Type:        domain.MissionType(completeType),
		CompletedAt: time.Now(),
	}
	reward := progression.AdjustedReward(progression.MissionReward(meta), hero.Level)

	result, err := d.Aggregator.ApplyMissionCompletion(hero, reward.XP, reward.Gold, meta)
	if err != nil {
		return err
	}
	if err := d.DB.SaveHero(hero); err != nil {
		return err
	}

	fmt.Printf("+%d XP, +%d gold\n", reward.XP, reward.Gold)
	if result.LevelUp.LeveledUp {
		fmt.Printf("Level up! %d -> %d\n", result.LevelUp.OldLevel, result.LevelUp.NewLevel)
	}
	if result.Title.Changed {
		fmt.Printf("New title: %s %s\n", result.Title.New.Icon, result.Title.New.Name)
	}
	if result.Streak.Updated {
		fmt.Printf("Streak: %d day(s)", result.Streak.Streak)
		if result.Streak.IsNewRecord {
			fmt.Print(" — new record!")
		}
		fmt.Println()
	}
	for _, a := range result.Unlocked {
		fmt.Printf("Achievement unlocked: %s %s (+%d XP, +%d gold)\n",
			a.Icon, a.Title, a.Reward.XP, a.Reward.Gold)
	}
	return nil
}
