package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"headcirctool/pkg/collection"
	"headcirctool/pkg/config"
	"headcirctool/pkg/contour"
	"headcirctool/pkg/resample"
	"headcirctool/pkg/transform"
	"headcirctool/pkg/visualization"
)

func main() {
	// Parse command line arguments
	inputDir := flag.String("input", "", "Directory containing 2D MRI slices (JPEG stack)")
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration file")
	thetaX := flag.Int("theta-x", 0, "X rotation in degrees")
	thetaY := flag.Int("theta-y", 0, "Y rotation in degrees")
	thetaZ := flag.Int("theta-z", 0, "Z rotation in degrees")
	sliceIndex := flag.Int("slice", 0, "Slice index along the z axis")
	sliceGap := flag.Float64("gap", 1.0, "Inter-slice gap in mm")
	smooth := flag.Bool("smooth", false, "Smooth the slice before measuring")
	export := flag.Bool("export", false, "Export the rendered slice with contour overlay")
	flag.Parse()

	// Validate inputs
	if *inputDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("HEAD CIRCUMFERENCE MEASUREMENT FROM OBLIQUE MRI SLICES")
	fmt.Println("================================")

	// Step 1: Load the volume
	fmt.Println("Step 1: Loading input slices...")
	vol, err := loadVolume(*inputDir, *sliceGap)
	if err != nil {
		log.Fatalf("Failed to load volume: %v", err)
	}
	fmt.Printf("Loaded volume with dimensions %dx%dx%d\n", vol.Width, vol.Height, vol.Depth)

	// Step 2: Apply the slice settings
	fmt.Println("Step 2: Applying slice settings...")
	entry := collection.NewEntry(filepath.Base(strings.TrimRight(*inputDir, "/")), vol)
	images := collection.New(entry)

	state := entry.State
	for _, a := range []struct {
		axis    transform.Axis
		degrees int
	}{
		{transform.AxisX, *thetaX},
		{transform.AxisY, *thetaY},
		{transform.AxisZ, *thetaZ},
	} {
		if err := state.SetAngle(a.axis, a.degrees); err != nil {
			log.Fatalf("Invalid rotation: %v", err)
		}
	}
	if err := state.SetSliceIndex(*sliceIndex); err != nil {
		log.Fatalf("Invalid slice index: %v", err)
	}

	// Step 3: Resample the rotated slice
	fmt.Println("Step 3: Resampling rotated slice...")
	smoother := resample.NewSmoother(
		cfg.Smoothing.Iterations,
		cfg.Smoothing.TimeStep,
		cfg.Smoothing.Conductance,
	)
	resampler := resample.NewResampler(smoother)
	slice, err := resampler.Resample(vol, state, *smooth || cfg.Smoothing.Enabled)
	if err != nil {
		log.Fatalf("Resampling failed: %v", err)
	}

	// Step 4: Extract the head contour
	fmt.Println("Step 4: Extracting head contour...")
	extractor := contour.NewExtractor(cfg.Contour.InvalidSliceContours)
	outline, err := extractor.Extract(slice)
	if errors.Is(err, contour.ErrInvalidSlice) {
		log.Fatalf("Slice (%d, %d, %d, %d) is not measurable: %v",
			*thetaX, *thetaY, *thetaZ, *sliceIndex, err)
	}
	if err != nil {
		log.Fatalf("Contour extraction failed: %v", err)
	}

	// Step 5: Measure the circumference
	fmt.Println("Step 5: Measuring circumference...")
	circumference, err := contour.Measure(outline)
	if err != nil {
		log.Fatalf("Perimeter measurement failed: %v", err)
	}

	fmt.Printf("\nCircumference: %.2f px\n", circumference)
	fmt.Printf("Slice settings: theta_x=%d theta_y=%d theta_z=%d slice=%d smooth=%v\n",
		state.ThetaX(), state.ThetaY(), state.ThetaZ(), state.SliceIndex(),
		*smooth || cfg.Smoothing.Enabled)

	// Export the rendered slice if requested
	if *export {
		fmt.Println("\nExporting rendered slice...")

		overlayColor, err := visualization.ParseColor(cfg.Contour.Color)
		if err != nil {
			log.Fatalf("Invalid contour color: %v", err)
		}
		renderer := visualization.NewRenderer(overlayColor)
		img := renderer.RenderWithContour(slice, outline)

		name := visualization.ExportName(entry.Name, images.Cursor(), cfg.Output.UseIndexNames,
			state.ThetaX(), state.ThetaY(), state.ThetaZ(), state.SliceIndex())
		outPath := filepath.Join(cfg.Output.ImageDir, name)
		if err := visualization.SaveImage(img, outPath); err != nil {
			log.Fatalf("Failed to export image: %v", err)
		}
		fmt.Printf("Rendered slice saved to: %s\n", outPath)
	}
}
