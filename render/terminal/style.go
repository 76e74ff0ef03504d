package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorPath   = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorCount  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleCount  = lipgloss.NewStyle().Foreground(colorCount).Bold(true)
	stylePath   = lipgloss.NewStyle().Foreground(colorPath)
	styleTitle  = lipgloss.NewStyle().Foreground(colorDim)
	styleEmpty  = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)
