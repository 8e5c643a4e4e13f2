package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// helpFuncs are the template helpers used by the usage template. Bold
// output is only emitted on a terminal.
func helpFuncs(onTerminal bool) template.FuncMap {
	bold := func(s string) string {
		if !onTerminal {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":      bold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}

// initTemplateFormatting registers the help helpers with cobra
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs(stdoutIsTerminal()))
}
