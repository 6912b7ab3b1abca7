package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"headcirctool/internal/models"
)

// loadVolume loads a directory of JPEG slice images into a 3D volume.
// Slices are stacked along the z axis in the order given by the
// numeric part of their filenames. Pixel intensities are the 8-bit
// grayscale values. Voxel spacing in z is the supplied inter-slice
// gap; x and y spacing are 1 mm.
func loadVolume(inputDir string, sliceGap float64) (*models.Volume, error) {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	// Filter and sort JPG files
	var imageFiles []string
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext == ".jpg" || ext == ".jpeg" {
			imageFiles = append(imageFiles, file.Name())
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no JPG images found in input directory")
	}

	// Sort files alphanumerically to ensure correct slice order,
	// preserving the anatomical ordering of structures
	sort.Slice(imageFiles, func(i, j int) bool {
		return extractNumber(imageFiles[i]) < extractNumber(imageFiles[j])
	})

	var vol *models.Volume
	for z, filename := range imageFiles {
		img, err := loadImage(filepath.Join(inputDir, filename))
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
		}

		bounds := img.Bounds()
		if vol == nil {
			vol = models.NewVolume(bounds.Dx(), bounds.Dy(), len(imageFiles))
			vol.VoxelSize.Z = sliceGap
		} else if bounds.Dx() != vol.Width || bounds.Dy() != vol.Height {
			return nil, fmt.Errorf("slice %s has dimensions %dx%d, want %dx%d",
				filename, bounds.Dx(), bounds.Dy(), vol.Width, vol.Height)
		}

		for y := 0; y < vol.Height; y++ {
			for x := 0; x < vol.Width; x++ {
				r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				// 16-bit color down to the 8-bit intensity grid
				vol.Set(x, y, z, float64(r>>8))
			}
		}
	}

	return vol, nil
}

// extractNumber extracts the numeric part from a filename
func extractNumber(filename string) int {
	base := filepath.Base(filename)
	numStr := ""
	for _, c := range base {
		if c >= '0' && c <= '9' {
			numStr += string(c)
		}
	}

	if numStr != "" {
		num, err := strconv.Atoi(numStr)
		if err == nil {
			return num
		}
	}
	return 0
}

// loadImage loads an image from a file
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := jpeg.Decode(file)
	if err != nil {
		return nil, err
	}

	return img, nil
}
