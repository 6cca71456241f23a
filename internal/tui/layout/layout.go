// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout provides the shared header/content/footer chrome for
// wizard screens, including terminal size validation.
package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the minimum terminal width required
	MinimumWidth = 60
	// MinimumHeight is the minimum terminal height required
	MinimumHeight = 14
)

// LayoutInfo contains everything needed to render a screen's chrome
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	Status      string
	HelpItems   []HelpItem
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	if width < MinimumWidth {
		return Dimensions{
			Width:  width,
			Height: height,
			Valid:  false,
			Error:  fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth),
		}
	}
	if height < MinimumHeight {
		return Dimensions{
			Width:  width,
			Height: height,
			Valid:  false,
			Error:  fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight),
		}
	}
	return Dimensions{Width: width, Height: height, Valid: true}
}

// RenderLayout combines header, content, and footer into a complete screen.
// Returns an error view if the terminal is too small.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims.Error, width, height)
	}

	header := RenderHeader(info.Title, info.Breadcrumbs, info.Status, width)

	var footer string
	if len(info.HelpItems) > 0 {
		footer = RenderFooter(info.HelpItems, width)
	}

	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	// MaxHeight enforces the ceiling, Height sets the box size
	styledContent := lipgloss.NewStyle().
		Width(width).
		MaxHeight(contentHeight).
		Height(contentHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, styledContent, footer)
}

// GetContentArea calculates the space left for content after the chrome
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	header := RenderHeader(info.Title, info.Breadcrumbs, info.Status, totalWidth)
	headerHeight := lipgloss.Height(header)

	footerHeight := 0
	if len(info.HelpItems) > 0 {
		footerHeight = lipgloss.Height(RenderFooter(info.HelpItems, totalWidth))
	}

	contentHeight := totalHeight - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	return Dimensions{Width: totalWidth, Height: contentHeight, Valid: true}
}

func renderSpaceError(message string, width, height int) string {
	errorStyle := lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height)

	lines := []string{
		"⚠ Terminal Too Small ⚠",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
		"",
		"Please resize your terminal",
	}

	return errorStyle.Render(strings.Join(lines, "\n"))
}
