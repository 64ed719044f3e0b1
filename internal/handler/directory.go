package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ankitpatil/disha/internal/directory"
	"github.com/ankitpatil/disha/internal/domain"
)

// DirectoryHandler serves the college, career, and scholarship listings.
type DirectoryHandler struct {
	logger *slog.Logger
}

// NewDirectoryHandler creates a directory handler.
func NewDirectoryHandler(logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{logger: logger}
}

// RegisterRoutes registers directory routes on the mux.
func (h *DirectoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/colleges", h.listColleges)
	mux.HandleFunc("GET /api/colleges/{id}", h.getCollege)
	mux.HandleFunc("GET /api/careers", h.listCareers)
	mux.HandleFunc("GET /api/careers/{id}", h.getCareer)
	mux.HandleFunc("GET /api/scholarships", h.listScholarships)
	mux.HandleFunc("GET /api/scholarships/{id}", h.getScholarship)
}

func (h *DirectoryHandler) listColleges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	colleges := directory.Colleges(directory.CollegeFilter{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
		Stream:   q.Get("stream"),
	})
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"colleges": colleges})
}

func (h *DirectoryHandler) getCollege(w http.ResponseWriter, r *http.Request) {
	const op = "handler.colleges.get"

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "college id must be an integer"))
		return
	}

	college := directory.CollegeByID(id)
	if college == nil {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "college", r.PathValue("id")))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"college": college})
}

func (h *DirectoryHandler) listCareers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	careers := directory.Careers(directory.CareerFilter{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Experience: q.Get("experience"),
		Salary:     q.Get("salary"),
	})
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"careers": careers})
}

func (h *DirectoryHandler) getCareer(w http.ResponseWriter, r *http.Request) {
	const op = "handler.careers.get"

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "career id must be an integer"))
		return
	}

	career := directory.CareerByID(id)
	if career == nil {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "career", r.PathValue("id")))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"career": career})
}

func (h *DirectoryHandler) listScholarships(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scholarships := directory.Scholarships(directory.ScholarshipFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Amount:   q.Get("amount"),
	})
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"scholarships": scholarships})
}

func (h *DirectoryHandler) getScholarship(w http.ResponseWriter, r *http.Request) {
	const op = "handler.scholarships.get"

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "scholarship id must be an integer"))
		return
	}

	scholarship := directory.ScholarshipByID(id)
	if scholarship == nil {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "scholarship", r.PathValue("id")))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"scholarship": scholarship})
}
