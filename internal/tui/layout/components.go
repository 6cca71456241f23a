// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"
)

// HelpItem represents a single key binding entry in the footer
type HelpItem struct {
	Key         string
	Description string
}

// RenderHeader creates a header with title, breadcrumbs, and optional status
func RenderHeader(title string, breadcrumbs []string, status string, width int) string {
	var header strings.Builder

	titleLine := TitleStyle.Render(title)
	if len(breadcrumbs) > 1 {
		breadcrumbText := strings.Join(breadcrumbs, BreadcrumbSeparator.String())
		titleLine += "  " + BreadcrumbStyle.Render(breadcrumbText)
	}
	header.WriteString(titleLine)

	if status != "" {
		header.WriteString("\n")
		header.WriteString(StatsStyle.Render(status))
	}

	header.WriteString("\n")
	header.WriteString(GetDivider(width))

	return header.String()
}

// RenderFooter creates a footer listing the screen's key bindings
func RenderFooter(helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}

	var footer strings.Builder
	footer.WriteString(GetDivider(width))
	footer.WriteString("\n")

	var helpTexts []string
	for _, item := range helpItems {
		helpTexts = append(helpTexts, fmt.Sprintf("[%s] %s",
			HelpKeyStyle.Render(item.Key),
			HelpTextStyle.Render(item.Description)))
	}

	footer.WriteString(FooterStyle.Width(width).Render(strings.Join(helpTexts, " • ")))

	return footer.String()
}
