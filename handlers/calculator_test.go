package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"quotecalc/testhelpers"
)

func TestHandleCalculatorPage(t *testing.T) {
	app, deps := newTestDeps(t)
	handler := HandleCalculatorPage(deps)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<h1>Calculateur d'offres de formation</h1>",
		`value="cyber-2h"`,
		"Formation IA - ½ journée",
		`name="sessions" min="1" value="1"`,
		`name="daily_rate" min="1000" value="1000"`,
		"Distante",
		"Vous devez choisir une formation",
	)
}

func TestHandleQuoteSummary_Priced(t *testing.T) {
	app, deps := newTestDeps(t)
	handler := HandleQuoteSummary(deps)

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormRequest("/quote", onSiteDistantForm()), rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Formation aux Outils Collaboratifs M365 - 1 journée",
		"Présentiel",
		"Distante",
		"2 jours",
		"600,00 € HT",
		"300 € (J1) + 300 € (dernier J) = 600 €",
		"2 600,00 € HT",
		"520,00 €",
		"3 120,00 € TTC",
		`<input type="hidden" name="zone" value="distant">`,
		`<button type="submit">Générer le devis</button>`,
	)
	testhelpers.AssertHTMLNotContains(t, body, "Le TJM minimum")
}

func TestHandleQuoteSummary_Remote(t *testing.T) {
	app, deps := newTestDeps(t)
	handler := HandleQuoteSummary(deps)

	form := url.Values{
		"offering":   {"cyber-half"},
		"mode":       {"remote"},
		"sessions":   {"4"},
		"zone":       {"distant"},
		"daily_rate": {"1200"},
	}
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormRequest("/quote", form), rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Distanciel", "2 jours", "2 400,00 € HT", "2 880,00 € TTC")
	testhelpers.AssertHTMLNotContains(t, body, "Zone de déplacement", "(J1)")
}

func TestHandleQuoteSummary_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want []string
	}{
		{
			name: "nothing selected",
			form: url.Values{"sessions": {"1"}},
			want: []string{"Vous devez choisir une formation", "Vous devez choisir un mode de formation"},
		},
		{
			name: "on-site without zone",
			form: url.Values{"offering": {"m365"}, "mode": {"on-site"}, "sessions": {"1"}},
			want: []string{"Vous devez choisir un forfait de déplacement"},
		},
		{
			name: "no sessions",
			form: url.Values{"offering": {"m365"}, "mode": {"remote"}, "sessions": {""}},
			want: []string{"Vous devez indiquer un nombre de sessions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, deps := newTestDeps(t)
			handler := HandleQuoteSummary(deps)

			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, newFormRequest("/quote", tt.form), rec)
			if err := handler(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			body := rec.Body.String()
			testhelpers.AssertHTMLContains(t, body, tt.want...)
			testhelpers.AssertHTMLNotContains(t, body, "Total TTC", "Générer le devis")
		})
	}
}

func TestHandleQuoteSummary_BelowRateFloor(t *testing.T) {
	app, deps := newTestDeps(t)
	handler := HandleQuoteSummary(deps)

	form := onSiteDistantForm()
	form.Set("daily_rate", "900")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormRequest("/quote", form), rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Le TJM minimum est de 1 000 € HT.",
		`<button type="submit" disabled>`,
		// The quotation is still priced.
		"Total TTC",
	)
}
