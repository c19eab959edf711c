package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType   string
	Width       int
	Height      int
	Workers     int
	MaxRecLevel int
	ShadowMode  string
	Help        bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene name ("+strings.Join(scene.Names(), ", ")+") or path to a .json scene")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.MaxRecLevel, "max-depth", 0, "Maximum recursion level (0 = scene default)")
	flag.StringVar(&config.ShadowMode, "shadow-mode", "", "Shadow darkening: 'compound' or 'per-light' (empty = scene default)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("JSON scenes:")
	fmt.Println("  Any .json file, or the name of a file in scenes/ without the extension")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

func run(config Config) error {
	sceneObj, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	if err := configureScene(sceneObj, config); err != nil {
		return err
	}

	camera, err := renderer.NewCamera(sceneObj.CameraConfig)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	fmt.Printf("Scene: %d shapes, %d lights, max recursion %d, %s shadows\n",
		sceneObj.GetPrimitiveCount(), len(sceneObj.Lights), sceneObj.MaxRecLevel, sceneObj.ShadowMode)

	raytracer := renderer.NewRaytracer(sceneObj, camera, renderer.RenderConfig{NumWorkers: config.Workers}, renderer.NewDefaultLogger())

	// Ctrl-C stops the render between rows
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := raytracer.RenderImage(ctx)
	if err != nil {
		return err
	}
	for i, rows := range stats.RowsPerWorker {
		if rows > 0 {
			fmt.Printf("  worker %d: %d rows\n", i, rows)
		}
	}

	outputDir := createOutputDir(config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in scene name, a JSON scene path, or the name
// of a JSON scene in the scenes directory
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene specified")
	}

	if sceneObj, err := scene.Create(sceneType); err == nil {
		fmt.Printf("Using %s scene...\n", sceneType)
		return sceneObj, nil
	}

	sceneObj, err := tryLoadJSONScene(sceneType)
	if err != nil {
		return nil, err
	}
	if sceneObj != nil {
		return sceneObj, nil
	}

	return nil, fmt.Errorf("unknown scene type: %s (available: %s)", sceneType, strings.Join(scene.Names(), ", "))
}

// tryLoadJSONScene loads sceneType as a JSON file path, or as a file name in
// scenes/. It returns a nil scene and no error when no such file exists.
func tryLoadJSONScene(sceneType string) (*scene.Scene, error) {
	var candidates []string
	if strings.HasSuffix(sceneType, ".json") {
		candidates = append(candidates, sceneType)
	} else {
		candidates = append(candidates,
			filepath.Join("scenes", sceneType+".json"),
			filepath.Join("..", "scenes", sceneType+".json"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		sceneObj, err := loaders.LoadScene(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		fmt.Printf("Loaded JSON scene %s\n", path)
		return sceneObj, nil
	}
	return nil, nil
}

// configureScene applies the command line overrides and validates the scene
func configureScene(sceneObj *scene.Scene, config Config) error {
	sceneObj.CameraConfig = renderer.MergeCameraConfig(sceneObj.CameraConfig, renderer.CameraConfig{
		Width:  config.Width,
		Height: config.Height,
	})
	if config.MaxRecLevel > 0 {
		sceneObj.MaxRecLevel = config.MaxRecLevel
	}
	if config.ShadowMode != "" {
		mode, err := scene.ParseShadowMode(config.ShadowMode)
		if err != nil {
			return err
		}
		sceneObj.ShadowMode = mode
	}
	return sceneObj.Preprocess()
}

// createOutputDir returns output/<name>, where name is the built-in scene
// name or the base name of a JSON scene file
func createOutputDir(sceneType string) string {
	base := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base)
}
