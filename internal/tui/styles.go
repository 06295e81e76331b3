package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	headerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	headerScrolled     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#1F3A4D")).Bold(true)
	navStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1)
	navActiveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(0, 1)
	menuIconStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	sectionTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	focusedTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Underline(true)
	bodyStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	mutedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	figurePendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	figureLoadedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8FBCBB"))
	counterValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	fieldErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	successStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	footerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	topButtonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	modalStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Padding(1, 2)
)
