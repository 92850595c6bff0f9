package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tti-backend/internal/catalog"
	"tti-backend/internal/repository"
)

type CourseHandler struct {
	courseRepo *repository.CourseRepo
}

func NewCourseHandler(courseRepo *repository.CourseRepo) *CourseHandler {
	return &CourseHandler{courseRepo: courseRepo}
}

// List returns the catalog, optionally filtered with ?track=wellness|clinical.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	track := r.URL.Query().Get("track")
	if track != "" && track != "wellness" && track != "clinical" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Track must be 'wellness' or 'clinical'", r))
		return
	}

	courses, err := h.courseRepo.List(r.Context(), track)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
		return
	}

	course, err := h.courseRepo.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Course not found", r))
			return
		}
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// Seed upserts the built-in training catalog. Re-running it refreshes course
// fields without touching enrollments or progress.
func (h *CourseHandler) Seed(w http.ResponseWriter, r *http.Request) {
	courses := catalog.SeedCourses()
	for i := range courses {
		if err := h.courseRepo.Upsert(r.Context(), &courses[i]); err != nil {
			handleServiceError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Course catalog seeded",
		"count":   len(courses),
	})
}
