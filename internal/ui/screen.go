package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

const fallbackWidth = 100

func StartScreen(title string, subtitle string) {
	ClearScreen()
	fmt.Println(Header(title))
	if subtitle != "" {
		fmt.Println(Tagline.Render(subtitle))
	}
	if !CurrentPreferences.Dense {
		fmt.Println()
	}
}

func ClearScreen() {
	if !IsInteractiveTerminal() {
		return
	}
	fmt.Print("\033[2J\033[H")
}

func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// TerminalWidth returns the stdout width, or a fallback when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
