package http

import (
	iofs "io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/willyhardian/expressjstutorial/internal/core"
)

// AssetHandler serves the site's static files. In dev they come straight
// from the content tree's static/ directory; in prod from the built dist
// tree, where the build copied them to the root.
type AssetHandler struct {
	source iofs.FS
	isDev  bool
}

func NewAssetHandler(source iofs.FS, isDev bool) http.Handler {
	return &AssetHandler{
		source: source,
		isDev:  isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	p := strings.TrimPrefix(req.URL.Path, "/")
	if p == "" || strings.Contains(p, "..") {
		http.NotFound(w, req)
		return
	}

	if h.isDev {
		p = path.Join("static", p)
	}

	data, err := iofs.ReadFile(h.source, p)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(p))
	_, _ = w.Write(data)
}
