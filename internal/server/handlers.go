package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mlaurier/doccheck/internal/db"
	"github.com/mlaurier/doccheck/internal/schemas"
	"github.com/mlaurier/doccheck/internal/server/middleware"
	"github.com/mlaurier/doccheck/internal/types"
)

// analyzeRequest is the POST /analyze body. Fields stay raw so schema
// validation sees exactly what the caller sent.
type analyzeRequest struct {
	DocumentType string          `json:"document_type"`
	Fields       json.RawMessage `json:"fields"`
	Summary      bool            `json:"summary,omitempty"`
}

// analyzeResponse wraps the engine output with transport-level extras.
type analyzeResponse struct {
	ID       *uuid.UUID           `json:"id,omitempty"`
	Result   types.AnalysisResult `json:"result"`
	Degraded bool                 `json:"degraded"`
	Reasons  []string             `json:"reasons,omitempty"`
	Warnings []string             `json:"warnings,omitempty"`
	Summary  string               `json:"summary,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRequirements exposes the rule catalog for a document type.
func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	dt, ok := types.ParseDocumentType(r.PathValue("document_type"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown document type")
		return
	}
	writeJSON(w, http.StatusOK, s.cat.Requirements(dt))
}

// handleAnalyze runs the engine on the submitted fields. Unknown document
// types still return 200 with a degraded result; only malformed JSON is a
// client error.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.DocumentType) == "" {
		writeError(w, http.StatusBadRequest, "document_type is required")
		return
	}

	var fields types.Fields
	if len(req.Fields) > 0 {
		if err := json.Unmarshal(req.Fields, &fields); err != nil {
			writeError(w, http.StatusBadRequest, "fields must be a JSON object")
			return
		}
	}

	resp := analyzeResponse{}

	// Advisory schema validation; the engine is tolerant of malformed
	// fields, so failures surface as warnings only.
	if s.schemaDir != "" && len(req.Fields) > 0 {
		if dt, ok := types.ParseDocumentType(req.DocumentType); ok {
			if err := schemas.ValidateFields(s.schemaDir, dt, req.Fields); err != nil {
				if warnings := schemas.Warnings(err); warnings != nil {
					resp.Warnings = warnings
				} else {
					log.Printf("[SERVER] schema validation unavailable: %v", err)
				}
			}
		}
	}

	outcome := s.engine.Analyze(req.DocumentType, fields)
	resp.Result = outcome.Result
	resp.Degraded = outcome.Degraded
	resp.Reasons = outcome.Reasons

	if req.Summary && s.summarizer != nil {
		summary, err := s.summarizer.Summarize(r.Context(), outcome.Result)
		if err != nil {
			log.Printf("[SERVER] summary generation failed: %v", err)
		} else {
			resp.Summary = summary
		}
	}

	if s.db != nil {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, err := s.db.SaveAnalysis(r.Context(), userID, outcome.Result, outcome.Degraded)
		if err != nil {
			log.Printf("[SERVER] failed to persist analysis: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to persist analysis")
			return
		}
		resp.ID = &id
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	rec, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil || rec.UserID != userID {
		// Same response as a missing record so IDs cannot be probed.
		writeError(w, http.StatusNotFound, db.ErrNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := s.db.ListAnalyses(r.Context(), userID, 50)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}
	if records == nil {
		records = []db.AnalysisRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// credentialsRequest is the body for register and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse carries an issued JWT.
type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	if _, err := s.db.GetUserByEmail(r.Context(), req.Email); err == nil {
		existsErr := &ErrEmailAlreadyExists{Email: req.Email}
		writeError(w, HTTPStatus(existsErr), existsErr.Error())
		return
	} else if !errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "failed to check existing user")
		return
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := s.db.CreateUser(r.Context(), req.Email, hash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusCreated, tokenResponse{Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !s.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		credsErr := &ErrInvalidCredentials{}
		writeError(w, HTTPStatus(credsErr), credsErr.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
