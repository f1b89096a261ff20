package web

import "net/http"

// handleAddressLookup resolves a postal code through the CEP directory.
func (s *Server) handleAddressLookup(w http.ResponseWriter, r *http.Request) {
	addr, err := s.cep.Lookup(r.Context(), r.PathValue("code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, addr, http.StatusOK)
}
