// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-plan/auth"
	"github.com/danielhkuo/quickly-plan/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("success"))
	}

	req := httptest.NewRequest("GET", "/schedule", nil)
	w := httptest.NewRecorder()

	WithLogging(testHandler)(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}

	// A fresh request ID is a UUID
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("Expected UUID request ID, got %q", w.Header().Get(RequestIDHeader))
	}
}

func TestWithLogging_ReusesRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	w := httptest.NewRecorder()

	WithLogging(func(w http.ResponseWriter, r *http.Request) {})(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "upstream-id" {
		t.Errorf("Expected request ID 'upstream-id', got %q", got)
	}
}

func TestBasicAuth_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("inside"))
	})
	handler := BasicAuth(auth.Credentials{}, next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/schedule", nil))

	if w.Code != http.StatusOK || w.Body.String() != "inside" {
		t.Errorf("Expected request to pass through, got %d %q", w.Code, w.Body.String())
	}
}

func TestBasicAuth(t *testing.T) {
	creds := auth.Credentials{Username: "planner", Password: "secret"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("inside"))
	})
	handler := BasicAuth(creds, next)

	testCases := []struct {
		name       string
		path       string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{"valid credentials", "/schedule", "planner", "secret", true, http.StatusOK},
		{"wrong password", "/schedule", "planner", "nope", true, http.StatusUnauthorized},
		{"no credentials", "/ai", "", "", false, http.StatusUnauthorized},
		{"health is open", "/health", "", "", false, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.wantStatus == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("Expected WWW-Authenticate header on 401")
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{"bad request", http.StatusBadRequest, "start and end must be given together", "Bad Request"},
		{"internal error", http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestFormValues(t *testing.T) {
	newRequest := func(form url.Values) *http.Request {
		req := httptest.NewRequest("POST", "/schedule", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	t.Run("all present", func(t *testing.T) {
		req := newRequest(url.Values{"date": {"2025-04-05"}, "description": {"dentist"}})

		values, err := FormValues(req, "date", "description")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if values["date"] != "2025-04-05" || values["description"] != "dentist" {
			t.Errorf("Unexpected values: %v", values)
		}
	})

	t.Run("empty value accepted", func(t *testing.T) {
		req := newRequest(url.Values{"date": {""}, "description": {""}})

		values, err := FormValues(req, "date", "description")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if values["date"] != "" || values["description"] != "" {
			t.Errorf("Expected empty values, got %v", values)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		req := newRequest(url.Values{"date": {"2025-04-05"}})

		_, err := FormValues(req, "date", "description")
		if err == nil || !strings.Contains(err.Error(), "description is required") {
			t.Errorf("Expected 'description is required', got %v", err)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100, 10.0.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if result := GetClientIP(req); result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
