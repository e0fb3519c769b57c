package editor

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// OSC52Clipboard sets the system clipboard through the terminal's OSC 52 escape
// sequence, which also works over SSH
type OSC52Clipboard struct {
	Out io.Writer
}

func (c OSC52Clipboard) WriteText(text string) error {
	_, err := fmt.Fprintf(c.Out, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// FileClipboard writes the text to a file, for hosts without a terminal
type FileClipboard struct {
	Path string
}

func (c FileClipboard) WriteText(text string) error {
	return os.WriteFile(c.Path, []byte(text), 0o644)
}
