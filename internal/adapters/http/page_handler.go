package http

import (
	"bytes"
	"html"
	"html/template"
	iofs "io/fs"
	"net/http"

	"github.com/willyhardian/expressjstutorial/internal/core"
	"github.com/willyhardian/expressjstutorial/internal/usecase"
)

// PageHandler routes page requests through the page service and turns its
// decisions into responses.
type PageHandler struct {
	service  *usecase.PageService
	mode     core.Mode
	manifest *core.Manifest
	dist     iofs.FS
}

func NewPageHandler(service *usecase.PageService, mode core.Mode, manifest *core.Manifest, dist iofs.FS) http.Handler {
	return &PageHandler{
		service:  service,
		mode:     mode,
		manifest: manifest,
		dist:     dist,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	input := usecase.ServePageInput{
		Mode:        h.mode,
		RequestPath: req.URL.Path,
		Manifest:    h.manifest,
	}

	output := h.service.ServePage(req.Context(), input)

	if output.Error != nil {
		h.serveError(w, output.Error)
		return
	}

	switch output.Action {
	case core.ActionServeBuiltFile:
		h.serveBuiltFile(w, req, output.FilePath)

	case core.ActionNotFound:
		http.NotFound(w, req)

	case core.ActionRenderHome, core.ActionRenderDoc:
		h.serveHTML(w, output.HTML)
	}
}

func (h *PageHandler) serveBuiltFile(w http.ResponseWriter, req *http.Request, path string) {
	data, err := iofs.ReadFile(h.dist, path)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := errorData{
		Message: err.Error(),
		IsDev:   h.mode == core.ModeDev,
	}

	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

type errorData struct {
	Message string
	IsDev   bool
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Internal Server Error</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>An error occurred while rendering this page.</p>
    {{end}}
</body>
</html>`))
