package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, readable on light and dark terminals
var (
	colorBrand   = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	colorOK      = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorID      = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorFailure = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
)

// Table cells
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// IDCellStyle right-aligns ids so they line up as numbers
	IDCellStyle = CellStyle.
			Foreground(colorID).
			Align(lipgloss.Right)

	MutedCellStyle = CellStyle.
			Foreground(colorDim)

	BorderStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Single record view
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrand).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(5)
)

// Status lines
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorBrand)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorOK)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorFailure).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)
)
