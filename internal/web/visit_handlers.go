package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/visitaup/visitas-api/internal/apperrors"
	"github.com/visitaup/visitas-api/internal/visit"
)

// visitRequest is the request body for creating or replacing a visit.
type visitRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	CEP         *string  `json:"cep"`
	Address     *string  `json:"address"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Responsible *string  `json:"responsible"`
	Status      string   `json:"status"`
}

func (in *visitRequest) toVisit() *visit.Visit {
	return &visit.Visit{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		CEP:         in.CEP,
		Address:     in.Address,
		Lat:         in.Lat,
		Lon:         in.Lon,
		Responsible: in.Responsible,
		Status:      in.Status,
	}
}

// parseVisitID reads the {id} path segment as an integer.
func parseVisitID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: visit id %q is not an integer", apperrors.ErrInvalid, raw)
	}
	return id, nil
}

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var in visitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: decoding body: %v", apperrors.ErrInvalid, err))
		return
	}

	saved, err := s.visits.Create(in.toVisit())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"id": saved.ID}, http.StatusCreated)
}

func (s *Server) handleListVisits(w http.ResponseWriter, r *http.Request) {
	opts := visit.ListOptions{Status: r.URL.Query().Get("status")}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			writeError(w, fmt.Errorf("%w: page must be an integer", apperrors.ErrInvalid))
			return
		}
		opts.Page = page
	}
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			writeError(w, fmt.Errorf("%w: size must be an integer", apperrors.ErrInvalid))
			return
		}
		// An explicit sub-1 size clamps to 1; only an absent size
		// selects the default.
		if size < 1 {
			size = 1
		}
		opts.Size = size
	}

	visits, err := s.visits.List(opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if visits == nil {
		visits = make([]*visit.Visit, 0)
	}

	writeJSON(w, visits, http.StatusOK)
}

func (s *Server) handleGetVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseVisitID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if id <= 0 {
		writeError(w, fmt.Errorf("%w: visit id must be positive", apperrors.ErrInvalid))
		return
	}

	v, err := s.visits.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, v, http.StatusOK)
}

func (s *Server) handleUpdateVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseVisitID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in visitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: decoding body: %v", apperrors.ErrInvalid, err))
		return
	}

	if err := s.visits.Update(id, in.toVisit()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"updated": id}, http.StatusOK)
}

func (s *Server) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseVisitID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.visits.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"deleted": id}, http.StatusOK)
}
