// Package notification delivers emails and SMS through an in-process queue.
// Channel implementations are stubs that log the rendered message; a real
// provider can be swapped in behind the same interface.
package notification

import (
	"strings"
)

// RenderTemplate substitutes {{name}}-style placeholders with lead fields.
// Unknown placeholders are left in place.
func RenderTemplate(template string, fields map[string]string) string {
	out := template
	for key, value := range fields {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
