package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dayflow-app/dayflow/internal/domain"
	"github.com/dayflow-app/dayflow/internal/infra/metrics"
)

// ─── Accounts ───────────────────────────────────────────────────────────────

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, sess, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
		"token":    sess.Token,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := s.accounts.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    u,
	})
}

// handleSession resolves a bearer token to its account ("whoami").
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	userID, err := s.accounts.ValidateSession(r.Context(), token)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	u, err := s.accounts.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    u,
	})
}

// ─── Tasks ──────────────────────────────────────────────────────────────────

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var tasks []domain.Task
	if date := r.URL.Query().Get("date"); date != "" {
		tasks, err = s.db.ListTasksForUserOnDate(r.Context(), userID, date)
	} else {
		tasks, err = s.db.ListTasksForUser(r.Context(), userID)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tasks":   tasks,
	})
}

type taskRequest struct {
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// toTask applies the create defaults: pending status, medium priority,
// today's date, a one-hour morning slot.
func (req *taskRequest) toTask() domain.Task {
	t := domain.Task{
		UserID:      req.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
	}
	if t.Category == "" {
		t.Category = "other"
	}
	if t.StartDate == "" {
		t.StartDate = time.Now().Format("2006-01-02")
	}
	if t.EndDate == "" {
		t.EndDate = t.StartDate
	}
	if t.StartTime == "" {
		t.StartTime = "09:00:00"
	}
	if t.EndTime == "" {
		t.EndTime = "10:00:00"
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	return t
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	created, err := s.db.CreateTask(r.Context(), req.toTask())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.TasksCreated.WithLabelValues(string(created.Tag)).Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"task":    created,
	})
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t := req.toTask()
	t.ID = id
	if err := s.db.UpdateTask(r.Context(), t); err != nil {
		writeDomainError(w, err)
		return
	}

	updated, err := s.db.TaskByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"task":    updated,
	})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := s.db.DeleteTask(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.TasksDeleted.Inc()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ─── Analysis ───────────────────────────────────────────────────────────────

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	date := chi.URLParam(r, "date")

	res, err := s.engine.Analyze(r.Context(), userID, date)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
