package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	// Header.
	brandStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray

	// Hero.
	heroTitleStyle = lipgloss.NewStyle().Bold(true)
	heroImageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	dotActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dotStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Sections.
	sectionTitleStyle        = lipgloss.NewStyle().Bold(true)
	sectionTitleFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	// Navigation controls.
	navStyle         = lipgloss.NewStyle().Bold(true)
	navDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	navHoverStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	// Card canvas styles, indexed by cardStyle* constants.
	cardStyles = []lipgloss.Style{
		cardStylePlain:   lipgloss.NewStyle(),
		cardStyleBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		cardStyleFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		cardStylePressed: lipgloss.NewStyle().Reverse(true),
		cardStyleMeta:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	}

	// Footer.
	promoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	attributionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Card canvas style indexes.
const (
	cardStylePlain = iota
	cardStyleBorder
	cardStyleFocused
	cardStylePressed
	cardStyleMeta
)

// Progress bar fills.
const (
	carouselFillColor = "#E50914"
	heroGradientFrom  = "#B20710"
	heroGradientTo    = "#E50914"
)
