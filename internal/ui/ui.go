package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	Red    = lipgloss.Color("9")
	Yellow = lipgloss.Color("11")
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
)

// SetOutput redirects diagnostics. Results never go through this package.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func Error(format string, a ...any) {
	printLine(Red, "✗", format, a...)
}

func Warn(format string, a ...any) {
	printLine(Yellow, "!", format, a...)
}

func printLine(color lipgloss.Color, symbol, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	prefix := lipgloss.NewStyle().Foreground(color).Render(symbol)
	fmt.Fprintf(output, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}
