package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

func newContactsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "manage contacts",
	}
	cmd.AddCommand(
		newContactsListCmd(c),
		newContactsAddCmd(c),
		newContactsUpdateCmd(c),
		newContactsDeleteCmd(c),
		newContactsTransferCmd(c, "move"),
		newContactsTransferCmd(c, "copy"),
	)
	return cmd
}

func newContactsListCmd(c *cli) *cobra.Command {
	var (
		page  int
		group int64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			var groupID *int64
			if group > 0 {
				groupID = &group
			}
			result, err := c.app.GetContactService().ListContacts(cmd.Context(), page, groupID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Content) == 0 {
				fmt.Fprintln(out, "No contacts found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tSUBSCRIBED")
			for _, contact := range result.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", contact.ID, contact.Email, contact.FullName(), contact.IsSubscribed)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "page %d of %d (%d contacts)\n", result.Page+1, result.TotalPages, result.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page to show, starting at 0")
	cmd.Flags().Int64Var(&group, "group", 0, "only show contacts of this group")
	return cmd
}

type contactFlags struct {
	firstName    string
	lastName     string
	unsubscribed bool
	group        int64
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name")
	cmd.Flags().BoolVar(&f.unsubscribed, "unsubscribed", false, "mark the contact as unsubscribed")
	cmd.Flags().Int64Var(&f.group, "group", 0, "group to add the contact to")
}

func (f *contactFlags) request(email string) *domain.CreateContactRequest {
	req := &domain.CreateContactRequest{
		Email:        email,
		IsSubscribed: !f.unsubscribed,
	}
	if f.firstName != "" {
		req.FirstName = &f.firstName
	}
	if f.lastName != "" {
		req.LastName = &f.lastName
	}
	if f.group > 0 {
		req.ContactGroupID = &f.group
	}
	return req
}

func newContactsAddCmd(c *cli) *cobra.Command {
	var flags contactFlags
	cmd := &cobra.Command{
		Use:   "add <email>",
		Short: "create a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			contact, err := c.app.GetContactService().CreateContact(cmd.Context(), flags.request(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created contact %d (%s)\n", contact.ID, contact.Email)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newContactsUpdateCmd(c *cli) *cobra.Command {
	var flags contactFlags
	cmd := &cobra.Command{
		Use:   "update <id> <email>",
		Short: "update a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			contact, err := c.app.GetContactService().UpdateContact(cmd.Context(), id, flags.request(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated contact %d (%s)\n", contact.ID, contact.Email)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newContactsDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "delete contacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			message, err := c.app.GetContactService().DeleteContacts(cmd.Context(), ids)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

// newContactsTransferCmd builds the move and copy commands, which only differ by endpoint
func newContactsTransferCmd(c *cli, verb string) *cobra.Command {
	var from, to int64
	cmd := &cobra.Command{
		Use:   verb + " <id>...",
		Short: verb + " contacts to another group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			req := &domain.TransferContactsRequest{ContactIDs: ids, ExistingGroupID: from, TargetGroupID: to}

			contacts := c.app.GetContactService()
			var message string
			if verb == "move" {
				message, err = contacts.MoveContacts(cmd.Context(), req)
			} else {
				message, err = contacts.CopyContacts(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
	cmd.Flags().Int64Var(&from, "from", 0, "group the contacts are in")
	cmd.Flags().Int64Var(&to, "to", 0, "group to "+verb+" the contacts to")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
