package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/visitaup/visitas-api/internal/apperrors"
	"github.com/visitaup/visitas-api/internal/distance"
	"github.com/visitaup/visitas-api/internal/visit"
)

func TestCreateVisit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/visits" {
			t.Errorf("got %s %s, want POST /visits", r.Method, r.URL.Path)
		}
		var req struct{ Title string }
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Title != "Roof inspection" {
			t.Errorf("title = %q", req.Title)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]int64{"id": 7}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.CreateVisit(VisitParams{Title: "Roof inspection"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
}

func TestGetVisit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/visits/42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(&visit.Visit{ID: 42, Title: "Warehouse check", Status: "scheduled"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	v, err := c.GetVisit(42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v.ID != 42 {
		t.Errorf("id = %d", v.ID)
	}
	if v.Title != "Warehouse check" {
		t.Errorf("title = %q", v.Title)
	}
}

func TestListVisits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/visits" {
			t.Errorf("path = %q, want /visits", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]*visit.Visit{{ID: 1, Title: "First"}}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	visits, err := c.ListVisits(ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("got %d visits, want 1", len(visits))
	}
	if visits[0].Title != "First" {
		t.Errorf("title = %q", visits[0].Title)
	}
}

func TestListVisitsWithOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" {
			t.Errorf("page = %q, want 2", q.Get("page"))
		}
		if q.Get("size") != "10" {
			t.Errorf("size = %q, want 10", q.Get("size"))
		}
		if q.Get("status") != "done" {
			t.Errorf("status = %q, want done", q.Get("status"))
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]*visit.Visit{}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.ListVisits(ListOptions{Page: 2, Size: 10, Status: "done"}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestUpdateVisit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" || r.URL.Path != "/visits/3" {
			t.Errorf("got %s %s, want PUT /visits/3", r.Method, r.URL.Path)
		}
		var req struct{ Status string }
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Status != "done" {
			t.Errorf("status = %q", req.Status)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int64{"updated": 3}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.UpdateVisit(3, VisitParams{Title: "Final check", Status: "done"}); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestDeleteVisit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" || r.URL.Path != "/visits/9" {
			t.Errorf("got %s %s, want DELETE /visits/9", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int64{"deleted": 9}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteVisit(9); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestLookupAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/address/cep/01310-100" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"cep":"01310-100","street":"Avenida Paulista","city":"São Paulo","uf":"SP"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	addr, err := c.LookupAddress("01310-100")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if addr.Street != "Avenida Paulista" {
		t.Errorf("street = %q", addr.Street)
	}
	if addr.UF != "SP" {
		t.Errorf("uf = %q", addr.UF)
	}
}

func TestCheckDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/visits/5/distance-check" {
			t.Errorf("got %s %s, want POST /visits/5/distance-check", r.Method, r.URL.Path)
		}
		var req map[string]distance.Point
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req["origin"].Lat != 1.5 || req["destination"].Lon != 4.5 {
			t.Errorf("body = %v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"distance_km":12.3}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	raw, err := c.CheckDistance(5, distance.Point{Lat: 1.5, Lon: 2.5}, distance.Point{Lat: 3.5, Lon: 4.5})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if string(raw) != `{"distance_km":12.3}` {
		t.Errorf("raw = %s", raw)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Health(); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestNotFoundError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"error":   "not_found",
			"message": "visit 42: not found",
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetVisit(42)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false for %v", err)
	}
	if err.Error() != "visit 42: not found" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"error":   "validation_error",
			"message": "invalid input: title is required",
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateVisit(VisitParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, apperrors.ErrInvalid) {
		t.Errorf("errors.Is(err, ErrInvalid) = false for %v", err)
	}
}

func TestBadGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"error":   "bad_gateway",
			"message": "bad gateway: could not reach address service",
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.LookupAddress("01310-100")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, apperrors.ErrBadGateway) {
		t.Errorf("errors.Is(err, ErrBadGateway) = false for %v", err)
	}
}

func TestPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListVisits(ListOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "server error: Service Unavailable" {
		t.Errorf("error = %q", err.Error())
	}
}
