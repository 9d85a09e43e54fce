package cmd

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/yarlson/fat/mainerr"
	"github.com/yarlson/fat/pathio"
)

func TestOutputConfig(t *testing.T) {
	tests := []struct {
		name           string
		colors         string
		emoji          bool
		expectError    bool
		expectedColors bool
		expectedEmoji  bool
	}{
		{
			name:           "auto mode",
			colors:         "auto",
			emoji:          true,
			expectError:    false,
			expectedColors: false, // TTY detection will return false in tests
			expectedEmoji:  true,
		},
		{
			name:           "always mode",
			colors:         "always",
			emoji:          false,
			expectError:    false,
			expectedColors: true,
			expectedEmoji:  false,
		},
		{
			name:           "never mode",
			colors:         "never",
			emoji:          true,
			expectError:    false,
			expectedColors: false,
			expectedEmoji:  true,
		},
		{
			name:        "invalid mode",
			colors:      "invalid",
			emoji:       true,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear NO_COLOR for consistent testing
			_ = os.Unsetenv("NO_COLOR")

			err := SetGlobalConfig(tt.colors, tt.emoji)

			if tt.expectError && err == nil {
				t.Errorf("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if !tt.expectError {
				if globalConfig.Colors != tt.expectedColors {
					t.Errorf("expected colors %v, got %v", tt.expectedColors, globalConfig.Colors)
				}
				if globalConfig.Emoji != tt.expectedEmoji {
					t.Errorf("expected emoji %v, got %v", tt.expectedEmoji, globalConfig.Emoji)
				}
			}
		})
	}
}

func TestNOCOLOREnvironmentVariable(t *testing.T) {
	// Test NO_COLOR environment variable with auto mode
	_ = os.Setenv("NO_COLOR", "1")
	defer func() { _ = os.Unsetenv("NO_COLOR") }()

	err := SetGlobalConfig("auto", true)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if globalConfig.Colors != false {
		t.Errorf("expected colors disabled when NO_COLOR is set, got %v", globalConfig.Colors)
	}
}

func TestWriterOutput(t *testing.T) {
	tests := []struct {
		name           string
		config         OutputConfig
		message        Message
		expectedPrefix string
		expectedText   string
		expectANSI     bool
	}{
		{
			name:   "full formatting",
			config: OutputConfig{Colors: true, Emoji: true},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedPrefix: "✅ \033[1;31m",
			expectedText:   "test message",
			expectANSI:     true,
		},
		{
			name:   "colors only",
			config: OutputConfig{Colors: true, Emoji: false},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedPrefix: "\033[1;31m",
			expectedText:   "test message",
			expectANSI:     true,
		},
		{
			name:   "color without bold",
			config: OutputConfig{Colors: true, Emoji: false},
			message: Message{
				Text:  "test message",
				Color: color.FgCyan,
			},
			expectedPrefix: "\033[36m",
			expectedText:   "test message",
			expectANSI:     true,
		},
		{
			name:   "emoji only",
			config: OutputConfig{Colors: false, Emoji: true},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedPrefix: "✅ test message",
			expectedText:   "test message",
		},
		{
			name:   "no formatting",
			config: OutputConfig{Colors: false, Emoji: false},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedPrefix: "test message",
			expectedText:   "test message",
		},
		{
			name:           "plain message",
			config:         OutputConfig{Colors: true, Emoji: true},
			message:        Message{Text: "plain text"},
			expectedPrefix: "plain text",
			expectedText:   "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := NewWriter(&buf, tt.config)

			writer.Write(tt.message)
			if err := writer.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			output := buf.String()
			if !strings.HasPrefix(output, tt.expectedPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.expectedPrefix, output)
			}
			if !strings.Contains(output, tt.expectedText) {
				t.Errorf("expected text %q, got %q", tt.expectedText, output)
			}
			if hasANSI := strings.Contains(output, "\033["); hasANSI != tt.expectANSI {
				t.Errorf("expected ANSI codes %v, got %q", tt.expectANSI, output)
			}
		})
	}
}

func TestPredefinedMessages(t *testing.T) {
	tests := []struct {
		name    string
		creator func(string) Message
		text    string
	}{
		{"Success", Success, "operation succeeded"},
		{"Error", Error, "something failed"},
		{"File", File, "notes.txt"},
		{"Dir", Dir, "src"},
		{"Link", Link, "connected"},
	}

	var buf bytes.Buffer
	writer := NewWriter(&buf, OutputConfig{Colors: true, Emoji: true})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			msg := tt.creator(tt.text)

			writer.Write(msg)
			if err := writer.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			output := buf.String()
			if !strings.Contains(output, tt.text) {
				t.Errorf("output should contain text %q, got %q", tt.text, output)
			}
		})
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		colors      string
		emoji       bool
		expected    string
		contains    []string
		notContains []string
	}{
		{
			name:     "path error with full formatting",
			err:      mainerr.From(pathio.New("/some/path", errors.New("something went wrong"))),
			colors:   "always",
			emoji:    true,
			contains: []string{"❌", "/some/path: something went wrong", "\033["},
		},
		{
			name:     "path error without formatting",
			err:      mainerr.From(pathio.New("/some/path", errors.New("something went wrong"))),
			colors:   "never",
			emoji:    false,
			expected: "/some/path: something went wrong\n",
		},
		{
			name:     "error without a path",
			err:      mainerr.From(errors.New("invalid format: yaml (valid: text, json)")),
			colors:   "never",
			emoji:    true,
			expected: "❌ invalid format: yaml (valid: text, json)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Unsetenv("NO_COLOR")
			if err := SetGlobalConfig(tt.colors, tt.emoji); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var buf bytes.Buffer
			rootCmd := NewRootCommand()
			rootCmd.SetErr(&buf)

			reportError(rootCmd, tt.err)

			output := buf.String()
			if tt.expected != "" && output != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, output)
			}
			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("output should contain %q, got %q", expected, output)
				}
			}
			for _, notExpected := range tt.notContains {
				if strings.Contains(output, notExpected) {
					t.Errorf("output should not contain %q, got %q", notExpected, output)
				}
			}
		})
	}
}
