package console

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	modeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	replyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	timingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("8")).
			Foreground(lipgloss.Color("10")).
			Padding(0, 2)
	codeTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
)
