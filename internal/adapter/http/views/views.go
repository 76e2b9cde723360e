// Package views embeds the HTML templates and static assets.
package views

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/pkg/translator"
)

//go:embed templates static
var files embed.FS

var patterns = []string{
	"templates/*.tmpl",
	"templates/admin/*.tmpl",
	"templates/user/*.tmpl",
}

// Templates parses every page. Pages are addressed by file name, e.g.
// "home.tmpl", so file names are unique across directories.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, patterns...)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"t": func(lang, messageID string) string {
			return translator.Localize(lang, messageID, nil)
		},
		"tn": func(lang, messageID, name string) string {
			return translator.Localize(lang, messageID, map[string]any{"Name": name})
		},
		"fieldErrors": fieldErrors,
	}
}

// Static serves the css directory tree.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func fieldErrors(errs any, field string) []string {
	switch messages := errs.(type) {
	case dto.FieldMessages:
		return messages[field]
	case map[string][]string:
		return messages[field]
	default:
		return nil
	}
}
