package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Version = "1.0"

	clearScreen = "\033[H\033[2J"

	unknownMessage      = "UNKNOWN COMMAND!\n\nEXITTING PROGRAM..."
	aboutUnknownMessage = "UNKNOWN COMMAND!\n\nEXITTING PROGRAM."
	easterMessage       = "\nhehehehehe XD"
)

var (
	frameStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 4).Width(55)
	titleStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Width(45)
	dimStyle   = lipgloss.NewStyle().Faint(true).Align(lipgloss.Right).Width(45)
)

var mainBody = []string{
	"                          z",
	"      [1] RUN             |   .",
	"                       .  |.    . .",
	"      [2] ABOUT           |  .   .",
	"                        . |_________ x",
	"      [3] EXIT           /  .   .",
	"                        /  .  .",
	"                       y",
}

var aboutBody = []string{
	"Due to lack of free 3D graphing software",
	"that can use complex numbers, a program",
	"like this was necessary, in order to",
	"extinguish my ignited curiosity.",
	"This program was written using",
	"go 1.24, ebiten 2.8 and gonum 0.15",
	"to plot the graph of the equation",
	"y + zi = (base)^x with negative bases.",
	"",
	"                         -Onurcan Okay",
	"  [1] BACK                 4/12/2021",
	"  [2] EXIT",
}

func renderScreen(body []string) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("GRAPH OF THE EQUATION\ny + zi = (base)^x"))
	s.WriteString("\n\n")
	s.WriteString(strings.Join(body, "\n"))
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("version: " + Version))

	return frameStyle.Render(s.String()) + "\n\n"
}

func MainScreen() string {
	return renderScreen(mainBody)
}

func AboutScreen() string {
	return renderScreen(aboutBody)
}
