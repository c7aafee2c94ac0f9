package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/dmccue/go-ray-caster/pkg/camera"
	"github.com/dmccue/go-ray-caster/pkg/scene"
	"github.com/dmccue/go-ray-caster/pkg/tracer"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'spheres', 'dof' or 'panorama'")
	output := flag.String("out", "demo.png", "Output PNG filename")
	samples := flag.Int("samples", 0, "Antialiasing samples per pixel (perfect square, 0 for the scene default)")
	progress := flag.Bool("progress", false, "Print per-column render progress")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Caster")
		fmt.Println("Usage: go-ray-caster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Receding matte spheres over a ground plane with a cuboid")
		fmt.Println("  spheres  - Two coloured spheres, one matte and one Phong")
		fmt.Println("  dof      - Glossy spheres through a thin lens with depth of field")
		fmt.Println("  panorama - Ring of spheres via the spherical panoramic camera")
		return
	}

	w, cam, err := buildScene(*sceneType, *samples)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	if *progress {
		attachProgress(cam)
	}

	startTime := time.Now()
	img, err := cam.RenderScene(w, tracer.MultipleObjects{})
	if err != nil {
		fmt.Printf("Error rendering scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered in %.3f seconds.\n", time.Since(startTime).Seconds())

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved to %q.\n", *output)
}

func buildScene(sceneType string, samples int) (*world.World, camera.Camera, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(samples)
	case "spheres":
		return scene.NewTwoSpheresScene(samples)
	case "dof":
		return scene.NewDepthOfFieldScene(samples)
	case "panorama":
		return scene.NewPanoramaScene(samples)
	default:
		return nil, nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// attachProgress wires a per-column progress printer into the camera
func attachProgress(cam camera.Camera) {
	report := func(done, total int) {
		fmt.Printf("\rcolumn %d/%d", done, total)
		if done == total {
			fmt.Println()
		}
	}
	if pr, ok := cam.(camera.ProgressReporter); ok {
		pr.SetProgress(report)
	}
}
