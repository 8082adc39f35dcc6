package nclu

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// CommandList returns list when it has entries, otherwise the non-blank
// lines of template with surrounding whitespace removed.
func CommandList(list []string, template string) []string {
	if len(list) > 0 {
		return list
	}

	commands := []string{}
	for _, line := range strings.Split(template, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		commands = append(commands, line)
	}
	return commands
}

// RenderTemplate replaces {{name}} placeholders with values from vars.
// Placeholders without a value render as an empty string.
func RenderTemplate(template string, vars map[string]string) (string, error) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("%w: template: %v", ErrInvalidRequest, err)
	}
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return io.WriteString(w, vars[strings.TrimSpace(tag)])
	}), nil
}
