// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/presenter"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

func parsePageTemplate() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return tmpl, nil
}

// pageData is the view model of the index template.
type pageData struct {
	Nonce    string
	Titles   []string
	Selected string
	Message  string
	IsError  bool
	Cards    []presenter.Card
}

// Index handles GET / and GET /?title=X. Without a title parameter it shows
// the selector only. With one it shows five cards or the matching banner.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Nonce:  cspNonce(r.Context()),
		Titles: h.titles,
	}
	status := http.StatusOK

	query := r.URL.Query()
	if query.Has("title") {
		data.Selected = query.Get("title")

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		result, err := h.presenter.PresentK(ctx, data.Selected, 0)
		cancel()

		if err != nil {
			var code string
			status, code = errorStatus(err)
			data.Message = presenter.Message(err)
			data.IsError = true
			if status >= http.StatusInternalServerError {
				logging.Ctx(r.Context()).Error().Err(err).Str("code", code).Msg("Page recommendation failed")
			}
		} else {
			data.Message = result.Message
			data.Cards = result.Cards
		}
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute page template")
		http.Error(w, presenter.MsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
