package handlers

import (
	"encoding/json"
	"net/http"

	"tti-backend/internal/middleware"
	"tti-backend/internal/models"
	"tti-backend/internal/repository"
	"tti-backend/internal/services"
)

type EnrollmentHandler struct {
	enrollmentRepo  *repository.EnrollmentRepo
	checkoutService *services.CheckoutService
	authService     *services.AuthService
}

func NewEnrollmentHandler(enrollmentRepo *repository.EnrollmentRepo, checkoutService *services.CheckoutService, authService *services.AuthService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentRepo:  enrollmentRepo,
		checkoutService: checkoutService,
		authService:     authService,
	}
}

// My returns the caller's enrollments with course details, pending and paid.
func (h *EnrollmentHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	enrollments, err := h.enrollmentRepo.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"enrollments": enrollments})
}

// Checkout opens a payment session for a course and returns the Stripe URL to
// redirect the browser to.
func (h *EnrollmentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.OriginURL == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "origin_url is required", r))
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	session, err := h.checkoutService.CreateSession(r.Context(), user, req.CourseID, req.OriginURL)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}
