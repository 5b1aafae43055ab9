package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotecalc/services"
)

// HandleQuoteExport returns a handler that prices the submitted selection and
// downloads it as a quotation document.
func HandleQuoteExport(deps *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		log := deps.logger().With(zap.String("request_id", GetRequestID(e.Request)))

		if err := e.Request.ParseForm(); err != nil {
			log.Warn("export: could not parse form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Données du formulaire invalides")
		}

		rules := deps.Engine.Rules()
		sel := selectionFromForm(e.Request.Form, rules)
		q, missing := deps.Engine.Calculate(sel)
		if len(missing) > 0 {
			messages := make([]string, len(missing))
			for i, m := range missing {
				messages[i] = m.Message()
			}
			return ErrorToast(e, http.StatusUnprocessableEntity, strings.Join(messages, ". "))
		}

		format := deps.DefaultFormat
		if raw := e.Request.FormValue(fieldFormat); raw != "" {
			f, err := services.ParseFormat(raw)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Format d'export non supporté")
			}
			format = f
		}

		res, err := deps.Exporter.Export(e.Request.Context(), services.ExportRequest{
			ClientName:    e.Request.FormValue(fieldClientName),
			CompanyName:   deps.CompanyName,
			DepartureCity: rules.DepartureCity,
			Quotation:     q,
			Format:        format,
			Date:          deps.now(),
		})
		if err != nil {
			status, message := exportErrorResponse(err, q)
			if status >= http.StatusInternalServerError {
				log.Error("export: failed", zap.Error(err))
			} else {
				log.Info("export: rejected", zap.Int("status", status), zap.Error(err))
			}
			return ErrorToast(e, status, message)
		}

		e.Response.Header().Set("Content-Type", res.ContentType)
		e.Response.Header().Set("Content-Disposition", contentDisposition(res.Filename))
		e.Response.Header().Set("X-Export-ID", res.ID)
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(res.Body)
		return err
	}
}

// exportErrorResponse maps an export failure to a status code and the notice
// shown to the user.
func exportErrorResponse(err error, q services.PricedQuotation) (int, string) {
	switch {
	case errors.Is(err, services.ErrClientNameRequired):
		return http.StatusUnprocessableEntity, "Le nom du client est obligatoire"
	case errors.Is(err, services.ErrRateBelowFloor):
		return http.StatusUnprocessableEntity, rateFloorMessage(q.MinDailyRate)
	case errors.Is(err, services.ErrIncompleteQuotation):
		return http.StatusUnprocessableEntity, "Le chiffrage est incomplet"
	case errors.Is(err, services.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Format d'export non supporté"
	case errors.Is(err, services.ErrExportInFlight):
		return http.StatusConflict, "Un export est déjà en cours"
	}
	return http.StatusInternalServerError, "La génération du devis a échoué"
}

// contentDisposition builds an attachment header with an ASCII fallback name
// and the UTF-8 name for clients that support it.
func contentDisposition(filename string) string {
	ascii := strings.Map(func(r rune) rune {
		if r > 126 || r < 32 {
			return '_'
		}
		return r
	}, filename)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, ascii, url.PathEscape(filename))
}
