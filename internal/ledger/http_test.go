package ledger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hanoi-lite/tape"
)

func newTestMux(t *testing.T) (*http.ServeMux, *SQLiteService) {
	t.Helper()
	s := newTestService(t)
	mux := http.NewServeMux()
	NewHTTPHandler(s).RegisterRoutes(mux)
	return mux, s
}

func TestHTTPUploadAndFetchTape(t *testing.T) {
	mux, _ := newTestMux(t)

	tp, err := tape.Generate(tape.SolveSpec{Disks: 3, Label: "upload"})
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	body, _ := json.Marshal(tp)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/solves", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/solves/"+tp.SolveID+"/tape", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch status = %d", rec.Code)
	}
	var fetched tape.WireSolveTape
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode fetched tape: %v", err)
	}
	if fetched.SolveID != tp.SolveID || len(fetched.Steps) != len(tp.Steps) {
		t.Fatalf("fetched tape mismatch: %+v", fetched)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/solves/recent", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("recent status = %d", rec.Code)
	}
	var listing struct {
		Items []SolveRecord `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatal(err)
	}
	if len(listing.Items) != 1 || listing.Items[0].Label != "upload" {
		t.Fatalf("unexpected listing: %+v", listing.Items)
	}
}

func TestHTTPUploadRejectsBrokenTape(t *testing.T) {
	mux, _ := newTestMux(t)

	tp, err := tape.Generate(tape.SolveSpec{Disks: 3})
	if err != nil {
		t.Fatal(err)
	}
	tp.Steps = tp.Steps[:3]
	body, _ := json.Marshal(tp)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/solves", bytes.NewReader(body)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestHTTPTapeNotFound(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/solves/nope/tape", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHTTPMethodGuards(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/solves/recent", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("recent POST status = %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/solves", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("upload GET status = %d, want 405", rec.Code)
	}
}
