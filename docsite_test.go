package docsite

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/willyhardian/expressjstutorial/content"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func newDevApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("DOCSITE_DEV", "1")

	app, err := New(content.FS, WithFeatures(content.Features))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return app
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHomepage(t *testing.T) {
	app := newDevApp(t)
	rec := get(t, app.Handler(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Express.js Tutorial",
		"Solve the Chaos",
		"Separate Your Concerns",
		"Built on PostgreSQL",
		"Start the Tutorial",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("homepage missing %q", want)
		}
	}

	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, body)
}

func TestDocPage(t *testing.T) {
	app := newDevApp(t)
	rec := get(t, app.Handler(), "/docs/intro")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `class="sidebar"`) {
		t.Error("doc page should render the sidebar")
	}
	if !strings.Contains(body, `class="pagination"`) {
		t.Error("doc page should render prev/next navigation")
	}
}

func TestNotFound(t *testing.T) {
	app := newDevApp(t)
	rec := get(t, app.Handler(), "/docs/no-such-page")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	app := newDevApp(t)

	css := get(t, app.Handler(), "/css/main.css")
	if css.Code != http.StatusOK {
		t.Errorf("css status = %d", css.Code)
	}
	if ct := css.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("css content type = %q", ct)
	}

	icon := get(t, app.Handler(), "/img/solve-the-chaos.svg")
	if icon.Code != http.StatusOK {
		t.Errorf("icon status = %d", icon.Code)
	}
}

func TestWrapKeepsAPIRoutes(t *testing.T) {
	app := newDevApp(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	h := app.Wrap(mux)

	api := get(t, h, "/api/health")
	if api.Code != http.StatusOK || api.Body.String() != "ok" {
		t.Errorf("api route broken: %d %q", api.Code, api.Body.String())
	}

	home := get(t, h, "/")
	if home.Code != http.StatusOK {
		t.Errorf("home status = %d", home.Code)
	}
}

func TestNewProdRequiresDist(t *testing.T) {
	t.Setenv("DOCSITE_DEV", "")

	if _, err := New(content.FS); err != ErrDistRequiredInProd {
		t.Errorf("error = %v, want ErrDistRequiredInProd", err)
	}
}
