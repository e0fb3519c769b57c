package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

func newCampaignsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "schedule campaigns",
	}
	cmd.AddCommand(newCampaignsPrepareCmd(c), newCampaignsScheduleCmd(c))
	return cmd
}

func newCampaignsPrepareCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare <template-id>",
		Short: "show the campaign draft for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			draft, err := c.app.GetCampaignService().PrepareCampaign(cmd.Context(), id)
			if err != nil {
				return err
			}
			printDraft(cmd.OutOrStdout(), draft)
			return nil
		},
	}
}

func printDraft(w io.Writer, draft *domain.CampaignDraft) {
	fmt.Fprintf(w, "name: %s\n", draft.Campaign.Name)
	fmt.Fprintf(w, "template: %d (%s)\n", draft.Template.ID, draft.Template.Name)
	fmt.Fprintf(w, "scheduled at: %s\n", draft.Campaign.ScheduledAt)
	if len(draft.ContactGroups) == 0 {
		fmt.Fprintln(w, "no contact groups, create one first")
		return
	}
	fmt.Fprintln(w, "contact groups:")
	for _, g := range draft.ContactGroups {
		fmt.Fprintf(w, "  %d  %s\n", g.ID, g.Name)
	}
}

func newCampaignsScheduleCmd(c *cli) *cobra.Command {
	var (
		name   string
		groups []int64
		date   string
		clock  string
	)
	cmd := &cobra.Command{
		Use:     "schedule <template-id>",
		Short:   "schedule a campaign",
		Example: "  emailbuilder campaigns schedule 12 --group 3 --group 4 --date 2025-06-01 --time 09:30",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			campaigns := c.app.GetCampaignService()
			draft, err := campaigns.PrepareCampaign(cmd.Context(), id)
			if err != nil {
				return err
			}
			campaign := draft.Campaign
			if name != "" {
				campaign.Name = name
			}
			for _, g := range groups {
				campaign.ToggleGroup(g)
			}
			if err := campaign.ScheduleAt(date, clock, time.Local); err != nil {
				return err
			}

			scheduled, err := campaigns.ScheduleCampaign(cmd.Context(), &campaign)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scheduled %q for %s\n", scheduled.Name, scheduled.ScheduledAt)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "campaign name, defaults to the template name")
	cmd.Flags().Int64SliceVar(&groups, "group", nil, "contact group to send to, repeatable")
	cmd.Flags().StringVar(&date, "date", "", "send date, YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", "send time, HH:MM, local time")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}
