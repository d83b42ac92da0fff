package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var notificationTemplate = template.Must(template.ParseFS(templateFS, "templates/notification.html"))

// RenderNotification renders the HTML body of a notification email. Newlines in message become
// line breaks; everything else is escaped.
func RenderNotification(subject, message string) (string, error) {
	var buf bytes.Buffer

	err := notificationTemplate.Execute(&buf, struct {
		Subject string
		Message template.HTML
	}{
		Subject: subject,
		Message: template.HTML(escapeLines(message)),
	})
	if err != nil {
		return "", fmt.Errorf("render notification template: %w", err)
	}

	return buf.String(), nil
}
