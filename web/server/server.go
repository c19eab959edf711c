package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request parameter limits
const (
	minImageSize   = 16
	maxImageSize   = 2000
	maxWorkers     = 256
	maxRecLevelCap = 12 // Trace cost grows exponentially with depth
)

// Server handles web requests for the raytracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// Serve static files
	s.mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/render-stream", s.handleRenderStream)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)

	return s
}

// Handler returns the HTTP handler with all routes registered
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string `json:"scene"`       // Built-in scene name
	Width       int    `json:"width"`       // Image width
	Height      int    `json:"height"`      // Image height
	Workers     int    `json:"workers"`     // Worker count, 0 = CPU count
	MaxRecLevel int    `json:"maxRecLevel"` // Recursion limit, 0 = scene default
	ShadowMode  string `json:"shadowMode"`  // "compound" or "per-light", empty = scene default
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scene.ListScenes()})
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	cam := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":       cam.Width,
			"height":      cam.Height,
			"maxRecLevel": sceneObj.MaxRecLevel,
			"shadowMode":  sceneObj.ShadowMode.String(),
			"shapes":      sceneObj.GetPrimitiveCount(),
			"lights":      len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":       map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":      map[string]int{"min": minImageSize, "max": maxImageSize},
			"workers":     map[string]int{"min": 0, "max": maxWorkers},
			"maxRecLevel": map[string]int{"min": 0, "max": maxRecLevelCap},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.MaxRecLevel, err = parseIntParam(query, "maxRecLevel", 0, 0, maxRecLevelCap); err != nil {
		return nil, err
	}
	req.ShadowMode = query.Get("shadowMode")

	// Performance warning
	if req.Width*req.Height > 800*600 {
		log.Printf("Render warning: %dx%d image may render slowly", req.Width, req.Height)
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds and validates the requested scene at the requested size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, renderer.CameraConfig{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, err
	}

	if req.MaxRecLevel > 0 {
		sceneObj.MaxRecLevel = req.MaxRecLevel
	}
	if req.ShadowMode != "" {
		mode, err := scene.ParseShadowMode(req.ShadowMode)
		if err != nil {
			return nil, err
		}
		sceneObj.ShadowMode = mode
	}

	if err := sceneObj.Preprocess(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", req.Scene, err)
	}
	return sceneObj, nil
}

// newRaytracer creates the camera and raytracer for a prepared scene
func (s *Server) newRaytracer(sceneObj *scene.Scene, req *RenderRequest, logger core.Logger) (*renderer.Raytracer, *renderer.Camera, error) {
	camera, err := renderer.NewCamera(sceneObj.CameraConfig)
	if err != nil {
		return nil, nil, err
	}
	config := renderer.RenderConfig{NumWorkers: req.Workers}
	return renderer.NewRaytracer(sceneObj, camera, config, logger), camera, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
