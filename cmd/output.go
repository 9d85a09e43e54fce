package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputConfig controls formatting behavior
type OutputConfig struct {
	Colors bool
	Emoji  bool
}

// Writer provides formatted output with configurable styling
type Writer struct {
	out    io.Writer
	config OutputConfig
	err    error // first error encountered
}

// NewWriter creates a new Writer with the given configuration
func NewWriter(out io.Writer, config OutputConfig) *Writer {
	return &Writer{
		out:    out,
		config: config,
	}
}

// Message represents a structured message with optional formatting
type Message struct {
	Text  string
	Color color.Attribute
	Emoji string
	Bold  bool
}

// Write outputs a message according to the writer's configuration
func (w *Writer) Write(msg Message) *Writer {
	if w.err != nil {
		return w
	}

	var output string

	if w.config.Emoji && msg.Emoji != "" {
		output = msg.Emoji + " "
	}

	text := msg.Text
	if w.config.Colors && (msg.Bold || msg.Color != noColor) {
		c := color.New()
		if msg.Bold {
			c.Add(color.Bold)
		}
		if msg.Color != noColor {
			c.Add(msg.Color)
		}
		c.EnableColor()
		text = c.Sprint(text)
	}
	output += text

	_, w.err = fmt.Fprint(w.out, output)
	return w
}

// Writeln writes a message followed by a newline
func (w *Writer) Writeln(msg Message) *Writer {
	return w.Write(msg).WriteString("\n")
}

// WriteString outputs plain text (no formatting)
func (w *Writer) WriteString(text string) *Writer {
	if w.err != nil {
		return w
	}
	_, w.err = fmt.Fprint(w.out, text)
	return w
}

const noColor color.Attribute = 0

// Colors used by the predefined messages
const (
	ColorRed   = color.FgRed
	ColorGreen = color.FgGreen
	ColorCyan  = color.FgCyan
	ColorGray  = color.FgHiBlack
)

// Predefined message constructors for common patterns

func Success(text string) Message {
	return Message{Text: text, Color: ColorGreen, Emoji: "✅", Bold: true}
}

func Error(text string) Message {
	return Message{Text: text, Color: ColorRed, Emoji: "❌"}
}

func File(text string) Message {
	return Message{Text: text, Color: ColorCyan, Emoji: "📄"}
}

func Dir(text string) Message {
	return Message{Text: text, Color: ColorCyan, Emoji: "📁"}
}

func Link(text string) Message {
	return Message{Text: text, Color: ColorCyan, Emoji: "🔗"}
}

func Colored(text string, c color.Attribute) Message {
	return Message{Text: text, Color: c}
}

// Global output configuration
var (
	globalConfig = OutputConfig{
		Colors: true, // auto-detect on first use
		Emoji:  true,
	}
	autoDetected bool
)

// SetGlobalConfig updates the global output configuration
func SetGlobalConfig(colors string, emoji bool) error {
	switch colors {
	case "auto":
		globalConfig.Colors = colorsAvailable()
	case "always":
		globalConfig.Colors = true
	case "never":
		globalConfig.Colors = false
	default:
		return fmt.Errorf("invalid color mode: %s (valid: auto, always, never)", colors)
	}

	globalConfig.Emoji = emoji
	autoDetected = true
	return nil
}

// colorsAvailable reports whether stdout is a color capable terminal.
// color.NoColor is computed at startup, so NO_COLOR set later is checked too.
func colorsAvailable() bool {
	return !color.NoColor && os.Getenv("NO_COLOR") == ""
}

// autoDetectConfig performs one-time auto-detection if not explicitly configured
func autoDetectConfig() {
	if !autoDetected {
		globalConfig.Colors = colorsAvailable()
		autoDetected = true
	}
}

// GetWriter returns a writer for the given cobra command
func GetWriter(cmd *cobra.Command) *Writer {
	autoDetectConfig()
	return NewWriter(cmd.OutOrStdout(), globalConfig)
}

// GetErrorWriter returns a writer for the given command's error stream
func GetErrorWriter(cmd *cobra.Command) *Writer {
	autoDetectConfig()
	return NewWriter(cmd.ErrOrStderr(), globalConfig)
}

// Err returns the first error encountered during writing
func (w *Writer) Err() error {
	return w.err
}
