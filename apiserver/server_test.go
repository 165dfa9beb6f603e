package apiserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netrixframework/proptest/config"
	"github.com/netrixframework/proptest/context"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/types"
)

func testServer() *APIServer {
	ctx := context.NewRootContext(config.Default(), log.DefaultLogger)
	ctx.Reports.Add(&types.RunReport{
		Name:            "sample-run",
		Outcome:         "Passes",
		Seed:            42,
		ValuesGenerated: 100,
	})
	return NewAPIServer(ctx)
}

func TestHandleHealth(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandleRuns(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/runs", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Count int                `json:"count"`
		Names []string           `json:"names"`
		Runs  []*types.RunReport `json:"runs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error unmarshalling response: %s", err)
	}
	if body.Count != 1 || len(body.Runs) != 1 {
		t.Fatalf("expected one report, got %d", body.Count)
	}
	if body.Runs[0].Name != "sample-run" {
		t.Errorf("unexpected report name: %q", body.Runs[0].Name)
	}
	if len(body.Names) != 1 || body.Names[0] != "sample-run" {
		t.Errorf("unexpected names listing: %v", body.Names)
	}
}

func TestHandleRunByName(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/runs/sample-run", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var report types.RunReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("error unmarshalling response: %s", err)
	}
	if report.Seed != 42 {
		t.Errorf("unexpected seed: %d", report.Seed)
	}
}

func TestHandleRunNotFound(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/runs/missing", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleRunByID(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/runs/0", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var report types.RunReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("error unmarshalling response: %s", err)
	}
	if report.Name != "sample-run" {
		t.Errorf("unexpected report name: %q", report.Name)
	}
}

func TestHandleRunDelete(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/runs/sample-run", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if srv.ctx.Reports.Size() != 0 {
		t.Errorf("expected the report removed, %d left", srv.ctx.Reports.Size())
	}

	rec = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/runs/sample-run", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on a second delete, got %d", rec.Code)
	}
}

func TestHandleRunsDelete(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/runs", nil)
	srv.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if srv.ctx.Reports.Size() != 0 {
		t.Errorf("expected an empty store, %d left", srv.ctx.Reports.Size())
	}
}
