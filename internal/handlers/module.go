package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tti-backend/internal/middleware"
	"tti-backend/internal/models"
	"tti-backend/internal/progression"
	"tti-backend/internal/repository"
)

const notificationQueue = "queue:notifications"

// ModuleHandler serves curriculum content behind two gates: a paid enrollment
// in the course, and the progression engine's unlock state.
type ModuleHandler struct {
	engine         *progression.Engine
	enrollmentRepo *repository.EnrollmentRepo
	queue          *redis.Client
}

func NewModuleHandler(engine *progression.Engine, enrollmentRepo *repository.EnrollmentRepo, queue *redis.Client) *ModuleHandler {
	return &ModuleHandler{engine: engine, enrollmentRepo: enrollmentRepo, queue: queue}
}

func (h *ModuleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	items, err := h.engine.ListModules(r.Context(), userID, courseID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modules": items})
}

func (h *ModuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	number, ok := moduleNumber(w, r)
	if !ok {
		return
	}

	view, err := h.engine.GetModuleView(r.Context(), userID, courseID, number)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *ModuleHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	number, ok := moduleNumber(w, r)
	if !ok {
		return
	}

	quiz, err := h.engine.GetQuizView(r.Context(), userID, courseID, number)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}

func (h *ModuleHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	number, ok := moduleNumber(w, r)
	if !ok {
		return
	}

	var req models.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	outcome, err := h.engine.SubmitQuiz(r.Context(), userID, courseID, number, req.Answers)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if outcome.Result.Passed {
		nextUnlocked := 0
		if outcome.NextUnlocked {
			nextUnlocked = number + 1
		}
		h.enqueuePassNotification(r.Context(), userID, courseID, number, nextUnlocked)
	}

	writeJSON(w, http.StatusOK, outcome.Result)
}

func (h *ModuleHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	summary, err := h.engine.GetSummary(r.Context(), userID, courseID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// authorize resolves the course from the URL and requires a paid enrollment.
func (h *ModuleHandler) authorize(w http.ResponseWriter, r *http.Request) (userID, courseID uuid.UUID, ok bool) {
	userID = middleware.GetUserID(r.Context())

	courseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
		return uuid.Nil, uuid.Nil, false
	}

	enrolled, err := h.enrollmentRepo.IsEnrolled(r.Context(), userID, courseID)
	if err != nil {
		handleServiceError(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}
	if !enrolled {
		writeJSON(w, http.StatusForbidden, errorResp("NOT_ENROLLED", "Paid enrollment required for this course", r))
		return uuid.Nil, uuid.Nil, false
	}

	return userID, courseID, true
}

func moduleNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid module number", r))
		return 0, false
	}
	return number, true
}

func (h *ModuleHandler) enqueuePassNotification(ctx context.Context, userID, courseID uuid.UUID, number, nextUnlocked int) {
	job := models.NotificationJob{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         "quiz-passed",
		CourseID:     courseID,
		ModuleNumber: number,
		NextUnlocked: nextUnlocked,
	}
	data, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := h.queue.LPush(ctx, notificationQueue, data).Err(); err != nil {
		log.Printf("⚠ Failed to enqueue quiz notification: %v", err)
	}
}
