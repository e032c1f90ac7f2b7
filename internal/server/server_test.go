package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pdf-catalog/internal/catalog"
)

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	s := New(":0")
	w := doRequest(t, s, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != statusIdle {
		t.Errorf("Status = %q, want %q", resp.Status, statusIdle)
	}
	if resp.Scanning {
		t.Error("Scanning = true before any scan")
	}
}

func TestHealthCheckWhileScanning(t *testing.T) {
	s := New(":0")
	s.SetScanning(true)

	var resp HealthResponse
	w := doRequest(t, s, "/healthz")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != statusScanning || !resp.Scanning {
		t.Errorf("got %+v, want scanning status", resp)
	}
}

func TestGetProgress(t *testing.T) {
	s := New(":0")
	s.SetScanning(true)
	s.SetProgress(3, 10)

	var resp ProgressResponse
	w := doRequest(t, s, "/progress")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Scanning || resp.Current != 3 || resp.Total != 10 {
		t.Errorf("progress = %+v, want scanning 3/10", resp)
	}
}

func TestGetCatalog(t *testing.T) {
	s := New(":0")

	// Before any scan: empty array, not null.
	w := doRequest(t, s, "/api/catalog")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body == "null\n" {
		t.Errorf("empty catalog rendered as %q, want JSON array", body)
	}

	s.SetCatalog(catalog.Catalog{
		{Index: 1, FileName: "A.Pdf", ReadStatus: "Unread"},
		{Index: 2, FileName: "B.Pdf", ReadStatus: "Unread"},
	})
	var got catalog.Catalog
	w = doRequest(t, s, "/api/catalog")
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].FileName != "A.Pdf" || got[1].Index != 2 {
		t.Errorf("catalog = %+v", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(":0")
	w := doRequest(t, s, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("metrics body is empty")
	}
}

func TestUnknownRoute(t *testing.T) {
	s := New(":0")
	w := doRequest(t, s, "/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
