package main

import (
	"fmt"
	"strconv"

	"github.com/admin-nexus/internal/client"

	"github.com/spf13/cobra"
)

func actionCommands(api func() *client.API) []*cobra.Command {
	addXP := &cobra.Command{
		Use:   "add-xp <user-id> <amount>",
		Short: "Atomically add XP to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive integer")
			}
			user, err := api().AddXP(c.Context(), args[0], amount)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	checkRewards := &cobra.Command{
		Use:   "check-rewards <user-id>",
		Short: "Evaluate and unlock rewards for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rewards, err := api().CheckRewards(c.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(rewards)
		},
	}

	var progressUser string
	var completed bool
	courseProgress := &cobra.Command{
		Use:   "course-progress <course-id> <percent>",
		Short: "Record course progress for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("percent must be an integer")
			}
			var done *bool
			if c.Flags().Changed("completed") {
				done = &completed
			}
			progress, err := api().UpdateCourseProgress(c.Context(), args[0], progressUser, percent, done)
			if err != nil {
				return err
			}
			return printJSON(progress)
		},
	}
	courseProgress.Flags().StringVar(&progressUser, "user", "", "User id")
	courseProgress.Flags().BoolVar(&completed, "completed", false, "Mark the course completed")
	_ = courseProgress.MarkFlagRequired("user")

	markRead := &cobra.Command{
		Use:   "mark-read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			n, err := api().MarkNotificationRead(c.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(n)
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		RunE: func(c *cobra.Command, _ []string) error {
			a := api()
			general, err := a.GeneralStats(c.Context())
			if err != nil {
				return err
			}
			tiers, err := a.UsersByTier(c.Context())
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{"general": general, "users_by_tier": tiers})
		},
	}

	health := &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(c *cobra.Command, _ []string) error {
			version, err := api().Health(c.Context())
			if err != nil {
				return err
			}
			fmt.Printf("ok (version %s)\n", version)
			return nil
		},
	}

	return []*cobra.Command{addXP, checkRewards, courseProgress, markRead, stats, health}
}
