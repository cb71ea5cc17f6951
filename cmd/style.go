package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printTitle(title string) {
	fmt.Println(titleStyle.Render("=== " + title + " ==="))
}

func printOK(format string, args ...any) {
	fmt.Println(okStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

func printDim(format string, args ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}
