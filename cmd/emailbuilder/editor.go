package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/internal/editor"
)

func newEditorCmd(c *cli) *cobra.Command {
	var (
		scriptPath string
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "open an editing session",
		Long: `Open an editing session driven by text commands, one per line.
Commands are read from the terminal, or from --script. Type help for the list.`,
		Example: "  emailbuilder editor\n  emailbuilder editor --script layout.txt --export email.html",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var in io.Reader = cmd.InOrStdin()
			if scriptPath != "" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			cfg := c.app.GetConfig()
			if exportPath == "" {
				exportPath = cfg.ExportPath
			}

			out := cmd.OutOrStdout()
			opts := []editor.ConsoleOption{editor.WithOpener(c.open)}
			if scriptPath == "" && c.isTerminal(in) {
				opts = append(opts, editor.WithPrompt("emailbuilder> "))
			}
			switch {
			case c.isTerminal(out):
				opts = append(opts, editor.WithClipboard(editor.OSC52Clipboard{Out: out}))
			case exportPath != "":
				opts = append(opts, editor.WithClipboard(editor.FileClipboard{Path: exportPath}))
			}
			if c.requireBackend() == nil {
				templates := c.app.GetTemplateService()
				opts = append(opts, editor.WithSaver(func(name string, doc domain.Document) (string, error) {
					template, err := templates.SaveDocument(ctx, name, doc)
					if err != nil {
						return "", err
					}
					return fmt.Sprintf("template %d (%s)", template.ID, template.Name), nil
				}))
			}

			session := c.app.NewEditorSession()
			console := editor.NewConsole(session, out, opts...)
			if err := console.Run(ctx, in); err != nil {
				return err
			}

			if exportPath != "" {
				if err := writeOutput(out, exportPath, session.HTML()); err != nil {
					return err
				}
				c.app.GetLogger().WithField("path", exportPath).Info("Email exported")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "read editor commands from a file")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the final HTML to this file, overrides EXPORT_PATH")
	return cmd
}
