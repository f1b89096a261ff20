package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/visitaup/visitas-api/internal/apperrors"
	"github.com/visitaup/visitas-api/internal/distance"
)

// pointRequest uses pointers so that an absent coordinate is
// distinguishable from zero.
type pointRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// distanceCheckRequest is the request body for a distance check.
type distanceCheckRequest struct {
	Origin      *pointRequest `json:"origin"`
	Destination *pointRequest `json:"destination"`
}

func (in *distanceCheckRequest) validate() error {
	if in.Origin == nil {
		return fmt.Errorf("%w: origin is required", apperrors.ErrInvalid)
	}
	if in.Destination == nil {
		return fmt.Errorf("%w: destination is required", apperrors.ErrInvalid)
	}
	if in.Origin.Lat == nil || in.Origin.Lon == nil {
		return fmt.Errorf("%w: origin needs both lat and lon", apperrors.ErrInvalid)
	}
	if in.Destination.Lat == nil || in.Destination.Lon == nil {
		return fmt.Errorf("%w: destination needs both lat and lon", apperrors.ErrInvalid)
	}
	return nil
}

// handleDistanceCheck relays a distance calculation between two points.
// The visit id only shapes the route; it is not checked against the
// store.
func (s *Server) handleDistanceCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := parseVisitID(r); err != nil {
		writeError(w, err)
		return
	}

	var in distanceCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: decoding body: %v", apperrors.ErrInvalid, err))
		return
	}
	if err := in.validate(); err != nil {
		writeError(w, err)
		return
	}

	payload, err := s.distance.Check(r.Context(),
		distance.Point{Lat: *in.Origin.Lat, Lon: *in.Origin.Lon},
		distance.Point{Lat: *in.Destination.Lat, Lon: *in.Destination.Lon},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, payload, http.StatusOK)
}
