package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learncheck/learncheck/internal/explain"
	"github.com/learncheck/learncheck/internal/grading"
	"github.com/learncheck/learncheck/internal/quiz"
)

type quizRequest struct {
	MaterialID string `json:"materialId"`
	Difficulty string `json:"difficulty"`
}

// handleQuiz fetches the material, runs the generate-audit loop, and
// returns the accepted quiz.
func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.MaterialID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "materialId is required")
		return
	}
	difficulty, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	tutorial, err := s.materials.FetchTutorial(r.Context(), req.MaterialID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	result, err := s.producer.ProduceQuiz(r.Context(), tutorial.Content, difficulty)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	result.Title = tutorial.Title
	writeJSON(w, http.StatusOK, result)
}

type gradeRequest struct {
	Quiz        quiz.Quiz                  `json:"quiz"`
	Answers     map[int][]string           `json:"answers"`
	Confidences map[int]grading.Confidence `json:"confidences"`
}

// handleGrade grades a completed attempt and returns the classification
// report. Grading is pure; the quiz travels with the request.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := req.Quiz.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid quiz: "+err.Error())
		return
	}

	report := grading.Classify(&req.Quiz, grading.Response{
		Selected:   req.Answers,
		Confidence: req.Confidences,
	})
	writeJSON(w, http.StatusOK, report)
}

type explainRequest struct {
	Question quiz.Question `json:"question"`
	Selected []string      `json:"selected"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if s.explainer == nil {
		writeError(w, http.StatusServiceUnavailable, "explain_unavailable", "explanation capability is not configured")
		return
	}

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Question.Prompt == "" || len(req.Question.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "question with prompt and answer is required")
		return
	}

	text, err := s.explainer.Explain(r.Context(), explain.Input{
		Question: req.Question,
		Selected: req.Selected,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{Explanation: text})
}

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	prefs := s.materials.FetchPreferences(r.Context(), userID)
	writeJSON(w, http.StatusOK, prefs)
}
