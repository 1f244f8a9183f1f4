package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MOYARU/parameterx/internal/report"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const AsciiArt = `
██████╗  █████╗ ██████╗  █████╗ ███╗   ███╗███████╗████████╗███████╗██████╗ ██╗  ██╗
██╔══██╗██╔══██╗██╔══██╗██╔══██╗████╗ ████║██╔════╝╚══██╔══╝██╔════╝██╔══██╗╚██╗██╔╝
██████╔╝███████║██████╔╝███████║██╔████╔██║█████╗     ██║   █████╗  ██████╔╝ ╚███╔╝
██╔═══╝ ██╔══██║██╔══██╗██╔══██║██║╚██╔╝██║██╔══╝     ██║   ██╔══╝  ██╔══██╗ ██╔██╗
██║     ██║  ██║██║  ██║██║  ██║██║ ╚═╝ ██║███████╗   ██║   ███████╗██║  ██║██╔╝ ██╗
╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝
`

var (
	highColor   = color.New(color.FgRed, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgBlue)
	errorColor  = color.New(color.FgRed)
)

// ColorEnabled reports whether f is a terminal and colours were not turned
// off globally.
func ColorEnabled(f *os.File) bool {
	return !color.NoColor && term.IsTerminal(int(f.Fd()))
}

// PrintBanner writes the ASCII art and tagline. With colour on, the art is
// drawn with a yellow to blue gradient.
func PrintBanner(w io.Writer, colored bool, tagline string) {
	lines := strings.Split(strings.Trim(AsciiArt, "\n"), "\n")
	for i, line := range lines {
		if !colored {
			fmt.Fprintln(w, line)
			continue
		}
		ratio := float64(i) / float64(len(lines)-1)

		var r, g, b int
		// Yellow (255,255,0) -> Cyan (0,255,255) -> Blue (0,0,255)
		if ratio < 0.5 {
			localRatio := ratio * 2
			r = int(255 * (1 - localRatio))
			g = 255
			b = int(255 * localRatio)
		} else {
			localRatio := (ratio - 0.5) * 2
			r = 0
			g = int(255 * (1 - localRatio))
			b = 255
		}

		c := color.RGB(r, g, b)
		c.EnableColor()
		fmt.Fprintln(w, c.Sprint(line))
	}
	fmt.Fprintf(w, "%s\n\n", tagline)
}

// RiskLabel returns the risk name coloured by severity.
func RiskLabel(r report.Risk) string {
	switch r {
	case report.RiskHigh:
		return highColor.Sprint(string(r))
	case report.RiskMedium:
		return mediumColor.Sprint(string(r))
	case report.RiskLow:
		return lowColor.Sprint(string(r))
	default:
		return string(r)
	}
}

// Errorf prints a red error line to w.
func Errorf(w io.Writer, format string, args ...interface{}) {
	errorColor.Fprintf(w, format+"\n", args...)
}
