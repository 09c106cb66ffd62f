// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the site. Handlers are
// grouped by concern (public pages, templates, orders, feedback, AI
// templates, auth) and receive their dependencies through the group
// struct.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
)

// userID returns the signed-in user's id.
func userID(r *http.Request) (uuid.UUID, bool) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return uuid.Nil, false
	}
	return sess.UserID, true
}

// optionalUserID is userID for endpoints that also serve anonymous
// visitors.
func optionalUserID(r *http.Request) *uuid.UUID {
	if id, ok := userID(r); ok {
		return &id
	}
	return nil
}

// requireUser is userID for handlers mounted behind RequireAPIAuth; it
// still answers 401 if the middleware was skipped.
func requireUser(r *http.Request) (uuid.UUID, error) {
	if id, ok := userID(r); ok {
		return id, nil
	}
	return uuid.Nil, apperr.Unauthorized("Authentication required")
}

// pathUUID parses the chi URL parameter name.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.ValidationError("Invalid " + name)
	}
	return id, nil
}

// statusPage renders the shared status view.
func statusPage(rn *render.Renderer, w http.ResponseWriter, r *http.Request, code int, state, message string) {
	rn.Status(w, r, code, "status", &render.PageData{
		Title: "Bir Mesaj Mutluluk",
		Data:  map[string]any{"State": state, "Message": message},
	})
}
