package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

func newGroupsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "manage contact groups",
	}
	cmd.AddCommand(newGroupsListCmd(c), newGroupsCreateCmd(c), newGroupsDeleteCmd(c))
	return cmd
}

func newGroupsListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list contact groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			groups, err := c.app.GetContactGroupService().ListContactGroups(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No contact groups found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCONTACTS\tDESCRIPTION")
			for _, g := range groups {
				count := "-"
				if g.ContactCount != nil {
					count = fmt.Sprint(*g.ContactCount)
				}
				description := ""
				if g.Description != nil {
					description = *g.Description
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", g.ID, g.Name, count, description)
			}
			return w.Flush()
		},
	}
}

func newGroupsCreateCmd(c *cli) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "create a contact group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			req := &domain.CreateContactGroupRequest{Name: args[0]}
			if description != "" {
				req.Description = &description
			}
			group, err := c.app.GetContactGroupService().CreateContactGroup(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created group %d (%s)\n", group.ID, group.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "group description")
	return cmd
}

func newGroupsDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "delete a contact group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message, err := c.app.GetContactGroupService().DeleteContactGroup(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}
