package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/emailhtml"
	"github.com/Notifuse/emailbuilder/pkg/mjml"
)

// ErrQuit is returned by Execute when the user asked to leave
var ErrQuit = errors.New("quit")

// ConsoleOption configures a Console
type ConsoleOption func(*Console)

// WithPrompt prints a prompt before reading each line
func WithPrompt(prompt string) ConsoleOption {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// WithClipboard sets where the copy command sends the HTML
func WithClipboard(clipboard Clipboard) ConsoleOption {
	return func(c *Console) {
		c.clipboard = clipboard
	}
}

// WithOpener sets the function used by "export --open" to show a file
func WithOpener(open func(path string) error) ConsoleOption {
	return func(c *Console) {
		c.open = open
	}
}

// WithSaver enables the save command, which stores the document under a name
// and returns a description of where it went
func WithSaver(save func(name string, doc domain.Document) (string, error)) ConsoleOption {
	return func(c *Console) {
		c.save = save
	}
}

// Console drives a Session from text commands, one per line
type Console struct {
	session   *Session
	out       io.Writer
	prompt    string
	clipboard Clipboard
	open      func(path string) error
	save      func(name string, doc domain.Document) (string, error)
	commands  map[string]consoleCommand
}

type consoleCommand struct {
	usage string
	help  string
	run   func(args []string) error
	// line, when set, receives the rest of the line verbatim instead of split args
	line func(rest string) error
}

// NewConsole creates a console writing its output to out
func NewConsole(session *Session, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		session: session,
		out:     out,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.commands = map[string]consoleCommand{
		"types":    {usage: "types", help: "list the component types", run: c.cmdTypes},
		"add":      {usage: "add <type> [parent-id]", help: "add a component, into the selected grid or the given parent", run: c.cmdAdd},
		"select":   {usage: "select <id>", help: "select a component", run: c.cmdSelect},
		"deselect": {usage: "deselect", help: "clear the selection", run: c.cmdDeselect},
		"fields":   {usage: "fields", help: "show the editable fields of the selected component", run: c.cmdFields},
		"set":      {usage: "set <field> <value>", help: `edit a field of the selected component (\n separates list items)`, line: c.cmdSet},
		"delete":   {usage: "delete [id]", help: "delete a component, the selected one by default", run: c.cmdDelete},
		"clear":    {usage: "clear", help: "remove every component", run: c.cmdClear},
		"drag":     {usage: "drag <id>", help: "start dragging a component", run: c.cmdDrag},
		"over":     {usage: "over <id> <offset-y> <height>", help: "move the pointer over a component", run: c.cmdOver},
		"drop":     {usage: "drop", help: "drop the dragged component", run: c.cmdDrop},
		"cancel":   {usage: "cancel", help: "abandon the drag", run: c.cmdCancel},
		"move":     {usage: "move <id> <target-id> <before|after|inside>", help: "move a component", run: c.cmdMove},
		"tree":     {usage: "tree", help: "print the document tree", run: c.cmdTree},
		"html":     {usage: "html", help: "print the email HTML", run: c.cmdHTML},
		"copy":     {usage: "copy", help: "copy the email HTML to the clipboard", run: c.cmdCopy},
		"export":   {usage: "export <path> [--open]", help: "write the email HTML to a file", run: c.cmdExport},
		"inspect":  {usage: "inspect", help: "summarize links, images and warnings of the email", run: c.cmdInspect},
		"mjml":     {usage: "mjml", help: "print the email as an MJML template", run: c.cmdMJML},
		"save":     {usage: "save <name>", help: "save the email as a template", line: c.cmdSave},
		"help":     {usage: "help", help: "show this help", run: c.cmdHelp},
	}
	return c
}

// Run reads commands until EOF, quit or context cancellation, all of which end the
// session normally. Command errors are printed and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	// a blocked read on a terminal must not delay cancellation, so lines are read
	// in the background. The reader stays blocked on in until it yields or closes.
	go func() {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}
		err := c.Execute(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

// Execute runs a single command line
func (c *Console) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name := strings.ToLower(fields[0])
	if name == "quit" || name == "exit" {
		return ErrQuit
	}
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, type help for the list", fields[0])
	}
	if cmd.line != nil {
		return cmd.line(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])))
	}
	return cmd.run(fields[1:])
}

func (c *Console) usage(name string) error {
	return fmt.Errorf("usage: %s", c.commands[name].usage)
}

func (c *Console) cmdTypes(_ []string) error {
	for _, info := range domain.ComponentTypes() {
		fmt.Fprintf(c.out, "%-8s %s\n", info.Type, info.Label)
	}
	return nil
}

func (c *Console) cmdAdd(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return c.usage("add")
	}
	t, err := domain.ParseComponentType(args[0])
	if err != nil {
		return err
	}
	var id string
	var placement domain.Placement
	if len(args) == 2 {
		id, placement = c.session.AddComponentTo(t, args[1])
	} else {
		id, placement = c.session.AddComponent(t)
	}
	switch placement {
	case domain.PlacementRejected:
		return fmt.Errorf("could not add %s", t)
	case domain.RedirectedToRoot:
		fmt.Fprintf(c.out, "added %s at the root (parent unavailable)\n", id)
	default:
		fmt.Fprintf(c.out, "added %s\n", id)
	}
	return nil
}

func (c *Console) cmdSelect(args []string) error {
	if len(args) != 1 {
		return c.usage("select")
	}
	if !c.session.Select(args[0]) {
		return fmt.Errorf("no component with id %s", args[0])
	}
	return c.cmdFields(nil)
}

func (c *Console) cmdDeselect(_ []string) error {
	c.session.Deselect()
	return nil
}

func (c *Console) cmdFields(_ []string) error {
	panel, ok := c.session.Panel()
	if !ok {
		fmt.Fprintln(c.out, "Select a component to edit its properties")
		return nil
	}
	fmt.Fprintf(c.out, "%s (%s)\n", panel.Node.ID, panel.Node.Type)
	for _, f := range panel.Fields {
		value := strings.ReplaceAll(panel.Value(f.Name), "\n", `\n`)
		if len(f.Options) > 0 {
			fmt.Fprintf(c.out, "  %-13s %-28q [%s]\n", f.Name, value, strings.Join(f.Options, "|"))
			continue
		}
		fmt.Fprintf(c.out, "  %-13s %q\n", f.Name, value)
	}
	if panel.AcceptsChildren() {
		fmt.Fprintf(c.out, "  %d/%d columns used, add components to fill them\n", len(panel.Node.Children), panel.Node.Capacity())
	}
	return nil
}

func (c *Console) cmdSet(rest string) error {
	field, value, found := strings.Cut(rest, " ")
	if field == "" {
		return c.usage("set")
	}
	if !found {
		value = ""
	}
	value = strings.ReplaceAll(strings.TrimSpace(value), `\n`, "\n")
	return c.session.SetField(field, value)
}

func (c *Console) cmdDelete(args []string) error {
	switch len(args) {
	case 0:
		if !c.session.DeleteSelected() {
			return errors.New("nothing selected")
		}
	case 1:
		if !c.session.Delete(args[0]) {
			return fmt.Errorf("no component with id %s", args[0])
		}
	default:
		return c.usage("delete")
	}
	return nil
}

func (c *Console) cmdClear(_ []string) error {
	c.session.ClearAll()
	return nil
}

func (c *Console) cmdDrag(args []string) error {
	if len(args) != 1 {
		return c.usage("drag")
	}
	if !c.session.DragStart(args[0]) {
		return fmt.Errorf("no component with id %s", args[0])
	}
	return nil
}

func (c *Console) cmdOver(args []string) error {
	if len(args) != 3 {
		return c.usage("over")
	}
	offsetY, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}
	height, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid height: %w", err)
	}
	fmt.Fprintln(c.out, c.session.DragOver(args[0], offsetY, height))
	return nil
}

func (c *Console) cmdDrop(_ []string) error {
	return c.reportMove(c.session.Drop())
}

func (c *Console) cmdCancel(_ []string) error {
	c.session.DragCancel()
	return nil
}

func (c *Console) cmdMove(args []string) error {
	if len(args) != 3 {
		return c.usage("move")
	}
	position, err := domain.ParseDropPosition(args[2])
	if err != nil {
		return err
	}
	return c.reportMove(c.session.Move(args[0], args[1], position))
}

func (c *Console) reportMove(outcome domain.MoveOutcome) error {
	if outcome != domain.Moved {
		return fmt.Errorf("move refused: %s", outcome)
	}
	fmt.Fprintln(c.out, outcome)
	return nil
}

func (c *Console) cmdTree(_ []string) error {
	doc := c.session.Document()
	if doc.IsEmpty() {
		fmt.Fprintln(c.out, "Drag components here to start building your email")
		return nil
	}
	drag := c.session.DragState()
	doc.Walk(func(n domain.Node, _ string, depth int) bool {
		marker := " "
		if n.ID == c.session.Selected() {
			marker = "*"
		}
		line := fmt.Sprintf("%s%s %s (%s)", marker, strings.Repeat("  ", depth), n.ID, n.Type)
		if n.IsContainer() {
			line += fmt.Sprintf(" [%d/%d]", len(n.Children), n.Capacity())
		}
		if n.ID == drag.DraggedID {
			line += " <dragging>"
		}
		if n.ID == drag.OverID && drag.Position != domain.DropNone {
			line += fmt.Sprintf(" <drop %s>", drag.Position)
		}
		fmt.Fprintln(c.out, line)
		return true
	})
	return nil
}

func (c *Console) cmdHTML(_ []string) error {
	fmt.Fprintln(c.out, c.session.HTML())
	return nil
}

func (c *Console) cmdCopy(_ []string) error {
	if c.clipboard == nil {
		return errors.New("no clipboard available, use export instead")
	}
	if err := c.session.CopyHTML(c.clipboard); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "HTML copied to clipboard!")
	return nil
}

func (c *Console) cmdExport(args []string) error {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "--open") {
		return c.usage("export")
	}
	path := args[0]
	if err := os.WriteFile(path, []byte(c.session.HTML()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(c.out, "wrote %s\n", path)
	if len(args) == 2 {
		if c.open == nil {
			return errors.New("no viewer available")
		}
		if err := c.open(path); err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
	}
	return nil
}

func (c *Console) cmdInspect(_ []string) error {
	report, err := emailhtml.Inspect(c.session.HTML())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "blocks: %d, headings: %d, links: %d, images: %d, list items: %d, cells: %d\n",
		report.Blocks, len(report.Headings), len(report.Links), len(report.Images), report.ListItems, report.Cells)
	for _, warning := range report.Warnings() {
		fmt.Fprintf(c.out, "warning: %s\n", warning)
	}
	return nil
}

func (c *Console) cmdMJML(_ []string) error {
	fmt.Fprint(c.out, mjml.DocumentToMJML(c.session.Document()))
	return nil
}

func (c *Console) cmdSave(name string) error {
	if name == "" {
		return c.usage("save")
	}
	if c.save == nil {
		return errors.New("saving is not available, set BACKEND_URL and API_TOKEN")
	}
	where, err := c.save(name, c.session.Document())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "saved %s\n", where)
	return nil
}

func (c *Console) cmdHelp(_ []string) error {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.commands[name]
		fmt.Fprintf(c.out, "  %-45s %s\n", cmd.usage, cmd.help)
	}
	fmt.Fprintf(c.out, "  %-45s %s\n", "quit", "leave the editor")
	return nil
}
