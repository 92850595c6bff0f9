package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tti-backend/internal/models"
	"tti-backend/internal/progression"
	"tti-backend/internal/services"
)

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"auth validation", &services.ValidationError{Fields: map[string]string{"email": "bad"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", &services.ConflictError{Message: "Email already in use"}, http.StatusConflict, "CONFLICT"},
		{"service not found", &services.NotFoundError{Message: "Course not found"}, http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", &services.UnauthorizedError{Message: "Invalid email or password"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", &services.ForbiddenError{Message: "No"}, http.StatusForbidden, "FORBIDDEN"},
		{"rate limited", &services.RateLimitError{Message: "Slow down"}, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"quiz validation", &progression.ValidationError{Message: "expected 5 answers, got 3"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"module not found", &progression.NotFoundError{Message: "module 99 not found"}, http.StatusNotFound, "NOT_FOUND"},
		{"module locked", &progression.LockedError{Message: "module 2 is locked"}, http.StatusForbidden, "LOCKED"},
		{"store unavailable", &progression.UnavailableError{Err: errors.New("connection refused")}, http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", "req-123")

			handleServiceError(rr, req, tt.err)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.RequestID != "req-123" {
				t.Errorf("request_id = %q, want req-123", resp.Error.RequestID)
			}
		})
	}
}

func TestHandleServiceErrorValidationFields(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)

	handleServiceError(rr, req, &services.ValidationError{Fields: map[string]string{
		"email":    "Invalid email format",
		"password": "Password must be at least 8 characters",
	}})

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Error.Fields["email"] != "Invalid email format" {
		t.Errorf("fields.email = %q", resp.Error.Fields["email"])
	}
	if resp.Error.Fields["password"] == "" {
		t.Error("fields.password missing")
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"message": "ok"})

	if rr.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestQuizResultSerialization(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, &models.QuizResult{
		Score:          0.8,
		CorrectCount:   4,
		TotalQuestions: 5,
		Passed:         true,
	})

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["score"] != 0.8 {
		t.Errorf("score = %v, want 0.8", body["score"])
	}
	if body["correct_answers"] != float64(4) {
		t.Errorf("correct_answers = %v, want 4", body["correct_answers"])
	}
	if body["passed"] != true {
		t.Errorf("passed = %v, want true", body["passed"])
	}
}
