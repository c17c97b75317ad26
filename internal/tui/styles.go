// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/internal/config"
)

// Styles are the lipgloss styles used to draw the interface.
type Styles struct {
	Kinds  map[ast.Kind]lipgloss.Style
	Key    lipgloss.Style
	Count  lipgloss.Style
	Cursor lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles returns the styles for the given value colors.
func NewStyles(c config.Colors) Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	gray := lipgloss.Color("#6b7280")
	return Styles{
		Kinds: map[ast.Kind]lipgloss.Style{
			ast.StringKind: fg(c.String),
			ast.NumberKind: fg(c.Number),
			ast.BoolKind:   fg(c.Boolean),
			ast.NullKind:   fg(c.Null),
			ast.ArrayKind:  fg(c.Array),
			ast.ObjectKind: fg(c.Object),
		},
		Key:    fg(c.Key).Bold(true),
		Count:  lipgloss.NewStyle().Foreground(gray).Italic(true),
		Cursor: lipgloss.NewStyle().Background(lipgloss.Color("#1f2937")),

		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(gray),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
		Status:    lipgloss.NewStyle().Foreground(gray),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")),
		Muted:     lipgloss.NewStyle().Foreground(gray),
	}
}

// kind returns the style for values of kind k.
func (s Styles) kind(k ast.Kind) lipgloss.Style {
	if st, ok := s.Kinds[k]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
