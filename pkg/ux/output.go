// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides rich terminal output styling for the routelens CLI.
//
// Styled output is for humans; when stdout is not a terminal (pipes, CI)
// or NO_COLOR is set, output degrades to plain prefixed text so scripts
// can parse it.
package ux

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Civicgraph color palette - indigo civic blues with a fresh green accent
var (
	ColorIndigoBright  = lipgloss.Color("#7C8CF8") // Bright indigo - highlights
	ColorIndigoPrimary = lipgloss.Color("#5B6CDB") // Primary indigo - brand color
	ColorIndigoDeep    = lipgloss.Color("#3D4BA8") // Deep indigo - borders, accents
	ColorCivicGreen    = lipgloss.Color("#3DD68C") // Civic green - success
	ColorSlate         = lipgloss.Color("#5C6B7A") // Slate - muted text

	// Semantic colors
	ColorSuccess = lipgloss.Color("#3DD68C")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#5C6B7A")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	Box      lipgloss.Style
	ErrorBox lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorIndigoBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorIndigoPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorIndigoBright).Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorIndigoDeep).
		Padding(0, 1),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

var (
	plainMode     bool
	plainModeOnce sync.Once
	plainModeMu   sync.RWMutex
)

// Plain reports whether output should skip styling. True when stdout is
// not a terminal or NO_COLOR is set.
func Plain() bool {
	plainModeOnce.Do(func() {
		plainModeMu.Lock()
		defer plainModeMu.Unlock()
		if os.Getenv("NO_COLOR") != "" {
			plainMode = true
			return
		}
		fd := os.Stdout.Fd()
		plainMode = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	})

	plainModeMu.RLock()
	defer plainModeMu.RUnlock()
	return plainMode
}

// SetPlain overrides plain-mode detection. For the --plain flag and
// tests.
func SetPlain(plain bool) {
	plainModeOnce.Do(func() {})
	plainModeMu.Lock()
	plainMode = plain
	plainModeMu.Unlock()
}

// Title prints a styled title
func Title(text string) {
	if Plain() {
		fmt.Println(text)
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	if Plain() {
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
}

// Warning prints a warning message
func Warning(text string) {
	if Plain() {
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
}

// Error prints an error message
func Error(text string) {
	if Plain() {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
}

// Info prints an informational message
func Info(text string) {
	if Plain() {
		fmt.Println(text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
}

// Muted prints muted/secondary text
func Muted(text string) {
	if Plain() {
		fmt.Println(text)
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Box prints text in a rounded box
func Box(title, content string) {
	if Plain() {
		fmt.Printf("%s: %s\n", title, content)
		return
	}
	boxStyle := Styles.Box.Width(60)
	titleLine := Styles.Title.Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// Section prints a labeled list of paths, one per line. Empty lists are
// skipped entirely.
func Section(label string, items []string) {
	if len(items) == 0 {
		return
	}
	if Plain() {
		for _, item := range items {
			fmt.Printf("%s\t%s\n", label, item)
		}
		return
	}
	fmt.Printf("%s %s\n", Styles.Subtitle.Render(label), Styles.Muted.Render(fmt.Sprintf("(%d)", len(items))))
	for _, item := range items {
		fmt.Printf("  %s %s\n", Styles.Muted.Render(string(IconBullet)), item)
	}
}

// Summary prints a dependency count summary line
func Summary(route string, total int) {
	if Plain() {
		fmt.Printf("SUMMARY: route=%s dependencies=%d\n", route, total)
		return
	}
	fmt.Printf("\n%s %s %s\n",
		Styles.Bold.Render(route),
		Styles.Muted.Render(string(IconArrow)),
		Styles.Highlight.Render(fmt.Sprintf("%d dependencies", total)),
	)
}

// Banner prints the startup banner for long-running commands
func Banner(lines ...string) {
	if Plain() {
		for _, line := range lines {
			fmt.Println(line)
		}
		return
	}
	fmt.Println(Styles.Box.Width(60).Render(strings.Join(lines, "\n")))
}
