package httpserver

import (
	"bytes"
	"html/template"
	"net/http"
)

var statusTemplate = template.Must(template.New("status").Parse(
	`<html><head><title>GCE Reservation Helper</title></head>` +
		`<body><p>` +
		`Reservation ID: {{.Name}}<br/>` +
		`Zone: {{.Zone}}<br/>` +
		`VM Count: {{.Observed}} / {{.Target}}<br/>` +
		`</p></body></html>`,
))

// handleStatus renders the same HTML page for every path.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snapshot := s.progress.Snapshot()

	var buf bytes.Buffer

	if err := statusTemplate.Execute(&buf, snapshot); err != nil {
		s.logger.ErrorContext(ctx, "failed to render status page", "error", err)
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.DebugContext(ctx, "failed to write status page", "error", err)
	}
}
