package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the interactive session. Rendering happens only in
// this package; the vault core returns structured results.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// banner renders the application header shown at login.
func banner() string {
	return titleStyle.Render("Password Vault") + "\n" +
		dimStyle.Render("local credential store")
}
