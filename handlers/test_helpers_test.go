package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecalc/collections"
	"quotecalc/services"
	"quotecalc/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestDeps builds handler dependencies over the catalog stored in a
// seeded test app.
func newTestDeps(t *testing.T, opts ...services.ExporterOption) (*pocketbase.PocketBase, *Deps) {
	t.Helper()

	app := testhelpers.NewSeededTestApp(t)
	catalog, err := collections.LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	logger := testhelpers.NewLogger(t)
	return app, &Deps{
		Engine:        services.NewEngine(catalog, services.DefaultRules()),
		Exporter:      services.NewExporter(logger, opts...),
		Logger:        logger,
		CompanyName:   "NowBrains",
		DefaultFormat: services.FormatDOCX,
		Now:           func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) },
	}
}

// newFormRequest builds a url-encoded POST request.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// onSiteDistantForm is M365, on-site, 2 sessions, distant zone, 1000 €/day.
func onSiteDistantForm() url.Values {
	return url.Values{
		"offering":   {"m365"},
		"mode":       {"on-site"},
		"sessions":   {"2"},
		"zone":       {"distant"},
		"daily_rate": {"1000"},
	}
}
