package text

import (
	_ "embed" // use go embed to import template
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/a11ykit/achecker-client/internal/render/core"
	"github.com/gookit/color"
)

var (
	failTheme    = color.New(color.FgLightWhite, color.BgRed)
	passTheme    = color.New(color.FgBlack, color.BgGreen)
	defaultTheme = color.New(color.FgWhite, color.BgBlack)

	//go:embed template.txt
	templateContent string
)

// WriteReport write a (colorized) report in text format
func WriteReport(w io.Writer, entries []core.Entry, enableColor bool) error {
	t, e := template.
		New("achecker").
		Funcs(plainTextFuncMap(enableColor)).
		Parse(templateContent)
	if e != nil {
		return e
	}

	return t.Execute(w, entries)
}

func plainTextFuncMap(enableColor bool) template.FuncMap {
	funcs := template.FuncMap{
		"totalErrors":   totalErrors,
		"totalProblems": totalProblems,
	}

	if enableColor {
		funcs["status"] = status
		funcs["danger"] = color.Danger.Render
		funcs["warning"] = color.Warn.Render
		funcs["notice"] = color.Notice.Render
		funcs["success"] = color.Success.Render
		return funcs
	}

	// by default those functions return the given content untouched
	funcs["status"] = fmt.Sprint
	funcs["danger"] = fmt.Sprint
	funcs["warning"] = fmt.Sprint
	funcs["notice"] = fmt.Sprint
	funcs["success"] = fmt.Sprint
	return funcs
}

// status colors the service status token.
func status(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FAIL":
		return failTheme.Sprint(s)
	case "PASS":
		return passTheme.Sprint(s)
	default:
		return defaultTheme.Sprint(s)
	}
}

func totalErrors(entries []core.Entry) int {
	n := 0
	for _, e := range entries {
		n += len(e.Errors)
	}
	return n
}

func totalProblems(entries []core.Entry) int {
	n := 0
	for _, e := range entries {
		n += len(e.PotentialProblems)
	}
	return n
}
