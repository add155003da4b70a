package presentation

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program name and version, colored when w supports it.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	name := out.String("drills").Bold().Foreground(out.Color("#818cf8"))
	ver := out.String("v" + version).Foreground(out.Color("#f472b6"))
	fmt.Fprintf(w, "%s %s\n", name, ver)
}
