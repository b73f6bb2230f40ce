// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging logs the start and end of each request with slog, including
method, path, status and duration. Every request carries an ID in the
X-Request-ID header; an ID sent by a proxy is kept, otherwise a UUID is
generated:

	mux.HandleFunc("GET /schedule", middleware.WithLogging(handler.List))

# Basic Auth

BasicAuth wraps the whole mux when credentials are configured. /health is
always reachable:

	handler = middleware.BasicAuth(creds, mux)

# Responses

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "start is required")
	middleware.PageError(w, http.StatusNotFound, "Checklist not found")

# Forms

FormValues returns the named POST fields. A field missing from the form is
an error (the handlers answer 400); an empty field is not:

	values, err := middleware.FormValues(r, "date", "description")

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
