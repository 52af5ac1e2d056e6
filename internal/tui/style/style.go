// Package style provides lipgloss styling helpers for graph output.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// GitgudColors defines the color palette for branch lanes. Branch IDs cycle
// through it.
var GitgudColors = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{244, 98, 81},   // Red
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
	{80, 132, 243},  // Blue
}

// BranchColor returns the lipgloss color for a branch lane.
func BranchColor(branchID int) lipgloss.Color {
	c := GitgudColors[branchID%len(GitgudColors)]
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

// ColorBranch renders text in the branch's lane color.
func ColorBranch(text string, branchID int) string {
	return lipgloss.NewStyle().Foreground(BranchColor(branchID)).Render(text)
}

// ColorHead renders the checked-out commit's label bold in its lane color.
func ColorHead(text string, branchID int) string {
	return lipgloss.NewStyle().Foreground(BranchColor(branchID)).Bold(true).Render(text)
}

// ColorDim renders de-emphasized text
func ColorDim(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(text)
}

// IsTerminal reports whether stdout is a terminal. Plain output is used when
// it is not.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
