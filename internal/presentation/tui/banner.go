package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Canopy.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Green gradient, darkest at the roots.
	s1 := termenv.String("   ___ __ _ _ __   ___  _ __  _   _ ").Foreground(p.Color("#bbf7d0"))
	s2 := termenv.String("  / __/ _` | '_ \\ / _ \\| '_ \\| | | |").Foreground(p.Color("#86efac"))
	s3 := termenv.String(" | (_| (_| | | | | (_) | |_) | |_| |").Foreground(p.Color("#4ade80"))
	s4 := termenv.String("  \\___\\__,_|_| |_|\\___/| .__/ \\__, |").Foreground(p.Color("#22c55e"))
	s5 := termenv.String("                       |_|    |___/ ").Foreground(p.Color("#15803d"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}

// StatePill renders a state identity as a colored pill for trace output.
func StatePill(id string, active bool) string {
	p := termenv.ColorProfile()
	s := termenv.String(" " + id + " ")
	if active {
		return s.Foreground(p.Color("#052e16")).Background(p.Color("#4ade80")).String()
	}
	return s.Foreground(p.Color("#9ca3af")).String()
}
