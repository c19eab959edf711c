package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := serve(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := serve(t, "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body struct {
		Scenes []scene.SceneInfo `json:"scenes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Scenes) != len(scene.Names()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.Names()), len(body.Scenes))
	}
}

func TestHandleSceneConfig(t *testing.T) {
	rec := serve(t, "/api/scene-config?scene=gems")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body struct {
		Scene    string                 `json:"scene"`
		Defaults map[string]interface{} `json:"defaults"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Scene != "gems" {
		t.Errorf("Expected scene gems, got %s", body.Scene)
	}
	if body.Defaults["lights"].(float64) != 4 {
		t.Errorf("Expected 4 lights, got %v", body.Defaults["lights"])
	}

	if rec := serve(t, "/api/scene-config?scene=nonexistent"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown scene, got %d", rec.Code)
	}
}

func TestHandleRender(t *testing.T) {
	rec := serve(t, "/api/render?scene=default&width=32&height=24&workers=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=nonexistent&width=32&height=32"},
		{"width too small", "/api/render?width=1"},
		{"width not a number", "/api/render?width=abc"},
		{"too many workers", "/api/render?width=32&height=32&workers=100000"},
		{"bad shadow mode", "/api/render?width=32&height=32&shadowMode=soft"},
		{"recursion too deep", "/api/render?width=32&height=32&maxRecLevel=13"},
		{"negative recursion", "/api/render?width=32&height=32&maxRecLevel=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := serve(t, tt.target); rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleRenderStream(t *testing.T) {
	rec := serve(t, "/api/render-stream?scene=boxes&width=24&height=16&maxRecLevel=4")
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Expected text/event-stream, got %s", ct)
	}

	events := map[string][]string{}
	var current string
	scanner := bufio.NewScanner(bytes.NewReader(rec.Body.Bytes()))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			events[current] = append(events[current], strings.TrimPrefix(line, "data: "))
		}
	}

	if len(events["error"]) != 0 {
		t.Fatalf("Unexpected error events: %v", events["error"])
	}
	if len(events["console"]) == 0 {
		t.Error("Expected console events")
	}
	if len(events["complete"]) != 1 {
		t.Fatalf("Expected one complete event, got %d", len(events["complete"]))
	}

	var result RenderResult
	if err := json.Unmarshal([]byte(events["complete"][0]), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if result.ImageData == "" {
		t.Error("Expected image data")
	}
	if result.Stats.TotalPixels != 24*16 {
		t.Errorf("Expected %d pixels, got %d", 24*16, result.Stats.TotalPixels)
	}
}

func TestHandleRenderStream_Error(t *testing.T) {
	rec := serve(t, "/api/render-stream?scene=nonexistent&width=32&height=32")
	if !strings.Contains(rec.Body.String(), "event: error") {
		t.Errorf("Expected error event, got %q", rec.Body.String())
	}
}

func TestHandleInspect(t *testing.T) {
	// The default camera looks straight at the sphere at the origin
	rec := serve(t, "/api/inspect?scene=default&width=40&height=30&x=20&y=15")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Hit {
		t.Fatal("Expected center pixel to hit")
	}
	if resp.GeometryType != "sphere" {
		t.Errorf("Expected sphere, got %s", resp.GeometryType)
	}
	if !resp.FrontFace {
		t.Error("Expected front face hit")
	}
	if resp.Distance <= 0 {
		t.Errorf("Expected positive distance, got %f", resp.Distance)
	}

	// Top corner looks over the spheres into empty space
	rec = serve(t, "/api/inspect?scene=default&width=40&height=30&x=0&y=0")
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Hit {
		t.Errorf("Expected miss at top corner, got %s", resp.GeometryType)
	}
}

func TestHandleInspect_BadCoordinates(t *testing.T) {
	tests := []string{
		"/api/inspect?scene=default&width=40&height=30&x=abc&y=0",
		"/api/inspect?scene=default&width=40&height=30&x=0",
		"/api/inspect?scene=default&width=40&height=30&x=40&y=0",
		"/api/inspect?scene=default&width=40&height=30&x=0&y=-1",
	}
	for _, target := range tests {
		if rec := serve(t, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}
