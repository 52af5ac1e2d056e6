// Package tui provides the terminal user interface for gitgud.
//
// It handles:
//   - Interactive prompts and selections (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - The interactive graph playground (using bubbletea)
package tui
