package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/mjml"
)

func newTemplatesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "browse, preview and save templates",
	}
	cmd.AddCommand(
		newTemplatesListCmd(c),
		newTemplatesGetCmd(c),
		newTemplatesPreviewCmd(c),
		newTemplatesSaveCmd(c),
	)
	return cmd
}

func newTemplatesListCmd(c *cli) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			result, err := c.app.GetTemplateService().ListTemplates(cmd.Context(), page)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Content) == 0 {
				fmt.Fprintln(out, "No templates found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tNAME")
			for _, t := range result.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Type, t.Name)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "page %d of %d (%d templates)\n", result.Number+1, result.TotalPages, result.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page to show, starting at 0")
	return cmd
}

func newTemplatesGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "print the MJML of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			template, err := c.app.GetTemplateService().GetTemplate(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), template.MjmlContent)
			return nil
		},
	}
}

type previewOptions struct {
	file      string
	output    string
	openFile  bool
	watch     bool
	email     string
	firstName string
	lastName  string
}

// contact returns the sample contact used to personalise the preview, if any
func (o previewOptions) contact() *domain.Contact {
	if o.email == "" && o.firstName == "" && o.lastName == "" {
		return nil
	}
	contact := &domain.Contact{Email: o.email, IsSubscribed: true}
	if o.firstName != "" {
		contact.FirstName = &o.firstName
	}
	if o.lastName != "" {
		contact.LastName = &o.lastName
	}
	return contact
}

func newTemplatesPreviewCmd(c *cli) *cobra.Command {
	var opts previewOptions
	cmd := &cobra.Command{
		Use:   "preview [id]",
		Short: "compile a template to HTML",
		Long: `Compile a stored template, or a local MJML file with --file, to HTML.
Liquid tags are personalised when a sample contact is given.`,
		Example: "  emailbuilder templates preview 12 --first-name Ada --open\n  emailbuilder templates preview --file welcome.mjml --output welcome.html --watch",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (opts.file != "") {
				return fmt.Errorf("give either a template id or --file")
			}
			if opts.watch && opts.file == "" {
				return fmt.Errorf("--watch needs --file")
			}
			if opts.openFile && opts.output == "" {
				return fmt.Errorf("--open needs --output")
			}

			if opts.file == "" {
				if err := c.requireBackend(); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				_, result, err := c.app.GetPreviewService().PreviewTemplate(cmd.Context(), id, opts.contact())
				if err != nil {
					return err
				}
				return c.writePreview(cmd.OutOrStdout(), opts, result)
			}

			if err := c.previewFile(cmd.Context(), cmd.OutOrStdout(), opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return c.watchFile(ctx, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "local MJML file to compile instead of a stored template")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.openFile, "open", false, "open the HTML file once written")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "recompile --file whenever it changes")
	cmd.Flags().StringVar(&opts.email, "email", "", "sample contact email")
	cmd.Flags().StringVar(&opts.firstName, "first-name", "", "sample contact first name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "", "sample contact last name")
	return cmd
}

func (c *cli) previewFile(ctx context.Context, out io.Writer, opts previewOptions) error {
	source, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.file, err)
	}

	var data map[string]any
	if contact := opts.contact(); contact != nil {
		data = contact.TemplateData()
	}
	result, err := c.app.GetPreviewService().PreviewMJML(ctx, string(source), data)
	if err != nil {
		return err
	}
	return c.writePreview(out, opts, result)
}

func (c *cli) writePreview(out io.Writer, opts previewOptions, result *mjml.PreviewResult) error {
	if !result.Success {
		return fmt.Errorf("%s", result.ErrorMessage())
	}
	if err := writeOutput(out, opts.output, *result.HTML); err != nil {
		return err
	}
	if opts.output != "" {
		fmt.Fprintf(out, "wrote %s\n", opts.output)
	}
	if opts.openFile {
		if err := c.open(opts.output); err != nil {
			return fmt.Errorf("failed to open %s: %w", opts.output, err)
		}
	}
	return nil
}

// watchFile recompiles opts.file on every write until ctx is done.
// Compilation errors are reported and watching goes on.
func (c *cli) watchFile(ctx context.Context, out io.Writer, opts previewOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so watch its directory
	target, err := filepath.Abs(opts.file)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.file, err)
	}

	log := c.app.GetLogger().WithField("file", opts.file)
	log.Info("Watching for changes, press Ctrl+C to stop")

	// the browser is opened once, on the first compile
	opts.openFile = false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.previewFile(ctx, out, opts); err != nil {
				log.Warn(err.Error())
				continue
			}
			log.Debug("Template recompiled")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(fmt.Sprintf("Watcher error: %v", err))
		}
	}
}

func newTemplatesSaveCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "save a local MJML file as a user template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireBackend(); err != nil {
				return err
			}
			source, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			template, err := c.app.GetTemplateService().CreateUserTemplate(cmd.Context(), &domain.Template{
				Name:        args[0],
				MjmlContent: string(source),
				Type:        domain.TemplateTypeUser,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved template %d (%s)\n", template.ID, template.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "MJML file to save")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
