// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-plan/views"
)

type PageHandler struct {
	pages *views.Renderer
}

func NewPageHandler(pages *views.Renderer) *PageHandler {
	return &PageHandler{pages: pages}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusOK, views.Index, nil)
}
