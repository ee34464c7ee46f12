package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desenhapp/svgprep/pkg/pipeline"
)

const sampleDrawing = `<svg viewBox="0 0 200 200">
	<path fill="#FF0000" d="M0 0 L100 0 L100 100 L0 100 Z"/>
	<path fill="#000000" d="M0 0 L200 0 L200 200 L0 200 Z"/>
</svg>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	runner := pipeline.NewRunner(nil, nil, nil)
	srv := httptest.NewServer(NewServer(runner, nil).Router())
	t.Cleanup(srv.Close)
	t.Cleanup(func() { runner.Close() })
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestAdaptEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/adapt", "image/svg+xml", strings.NewReader(sampleDrawing))
	if err != nil {
		t.Fatalf("POST /v1/adapt error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body adaptResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body.SVG, `id="area-1"`) {
		t.Errorf("adapted SVG missing area-1:\n%s", body.SVG)
	}
	if body.Result == nil || body.Result.Colorable != 1 {
		t.Errorf("Result = %+v, want 1 colorable", body.Result)
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	drawing := `<svg><path id="area-1" fill="none" stroke="#333"/><path id="area-1" fill="#000000"/></svg>`
	resp, err := http.Post(srv.URL+"/v1/validate", "image/svg+xml", strings.NewReader(drawing))
	if err != nil {
		t.Fatalf("POST /v1/validate error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Result.Valid {
		t.Error("Result.Valid = true, want false for duplicate IDs")
	}
	if len(body.Result.Errors) != 1 || !strings.Contains(body.Result.Errors[0], "ID duplicado") {
		t.Errorf("Errors = %v, want one duplicate-ID error", body.Result.Errors)
	}
}

func TestFixEndpoint(t *testing.T) {
	srv := newTestServer(t)

	drawing := `<svg><path id="area-1" fill="none" stroke="#333"/><path id="area-1" pointer-events="none" fill="#000000"/></svg>`
	resp, err := http.Post(srv.URL+"/v1/fix", "image/svg+xml", strings.NewReader(drawing))
	if err != nil {
		t.Fatalf("POST /v1/fix error = %v", err)
	}
	defer resp.Body.Close()

	var body fixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Result.Fixed {
		t.Errorf("Result.Fixed = false, changes = %v", body.Result.Changes)
	}
	if !strings.Contains(body.SVG, `id="decorative-1"`) {
		t.Errorf("fixed SVG missing decorative-1:\n%s", body.SVG)
	}
}

func TestAdaptEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/adapt", "image/svg+xml", strings.NewReader(""))
	if err != nil {
		t.Fatalf("POST /v1/adapt error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestAdaptEndpoint_InvalidSVG(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/adapt", "image/svg+xml", strings.NewReader("<div>nope</div>"))
	if err != nil {
		t.Fatalf("POST /v1/adapt error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != "INVALID_SVG" {
		t.Errorf("Code = %q, want INVALID_SVG", body.Code)
	}
}
