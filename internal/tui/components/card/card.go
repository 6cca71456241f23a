// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"github.com/charmbracelet/lipgloss"
)

// Style defines the visual appearance of a card
type Style struct {
	BorderColor lipgloss.Color
	BorderStyle lipgloss.Border
	Padding     []int // [top, right, bottom, left]
	Margin      []int // [top, right, bottom, left]
	TitleColor  lipgloss.Color
	TitleBold   bool
	Width       int
	MaxHeight   int
}

// DefaultStyle returns the standard card style
func DefaultStyle() Style {
	return Style{
		BorderColor: lipgloss.Color("240"),
		BorderStyle: lipgloss.RoundedBorder(),
		Padding:     []int{1, 2, 1, 2},
		Margin:      []int{0, 0, 1, 0},
		TitleColor:  lipgloss.Color("75"),
		TitleBold:   true,
	}
}

// Render creates a bordered card with an optional title
func Render(title, content string, style Style) string {
	var titleRendered string
	if title != "" {
		titleRendered = lipgloss.NewStyle().
			Foreground(style.TitleColor).
			Bold(style.TitleBold).
			Render(title)
	}

	contentStyle := lipgloss.NewStyle()
	if style.Width > 0 {
		contentStyle = contentStyle.Width(style.Width)
	}
	if style.MaxHeight > 0 {
		contentStyle = contentStyle.MaxHeight(style.MaxHeight)
	}

	var body string
	if titleRendered != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, titleRendered, "", contentStyle.Render(content))
	} else {
		body = contentStyle.Render(content)
	}

	paddedStyle := lipgloss.NewStyle()
	if len(style.Padding) == 4 {
		paddedStyle = paddedStyle.Padding(style.Padding[0], style.Padding[1], style.Padding[2], style.Padding[3])
	}

	borderStyle := lipgloss.NewStyle().
		Border(style.BorderStyle).
		BorderForeground(style.BorderColor)
	if style.Width > 0 {
		borderStyle = borderStyle.Width(style.Width)
	}

	bordered := borderStyle.Render(paddedStyle.Render(body))

	marginStyle := lipgloss.NewStyle()
	if len(style.Margin) == 4 {
		marginStyle = marginStyle.Margin(style.Margin[0], style.Margin[1], style.Margin[2], style.Margin[3])
	}

	return marginStyle.Render(bordered)
}

// RenderSimple renders a card with the default style
func RenderSimple(title, content string) string {
	return Render(title, content, DefaultStyle())
}
