// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command curveinspect loads a tuple-encoded curve file and an image
// sequence directory and prints position, per-frame status, and
// image-load diagnostics for one frame, exercising the point, segmentation, and image-cache
// packages end to end. It mirrors the teacher's eg/ example programs
// (eg/is.go), which exist to exercise the library rather than ship a
// real tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	curve "github.com/galvanized/curvekit"
	"github.com/galvanized/curvekit/imagecache"
)

func main() {
	curveFile := flag.String("curve", "", "path to a JSON array of legacy point tuples")
	imageDir := flag.String("images", "", "directory of sequentially-numbered frame images")
	frame := flag.Int("frame", 0, "frame number to inspect")
	flag.Parse()

	if *curveFile == "" {
		log.Fatal("curveinspect: -curve is required")
	}

	curveData, err := loadCurve(*curveFile)
	if err != nil {
		log.Fatalf("curveinspect: %v", err)
	}
	segmented := curve.BuildSegmentedCurve(curveData)

	x, y, ok := segmented.PositionAt(int32(*frame))
	if ok {
		fmt.Printf("frame %d: position (%.3f, %.3f)\n", *frame, x, y)
	} else {
		fmt.Printf("frame %d: no position available\n", *frame)
	}
	status := segmented.StatusAt(int32(*frame))
	fmt.Printf("frame %d: %d point(s), startframe=%v, inactive=%v\n",
		*frame, status.TotalPoints(), status.IsStartframe, status.IsInactive)

	if *imageDir == "" {
		return
	}
	files, err := sequenceFiles(*imageDir)
	if err != nil {
		log.Fatalf("curveinspect: %v", err)
	}
	cache, err := imagecache.New(64)
	if err != nil {
		log.Fatalf("curveinspect: %v", err)
	}
	cache.SetImageSequence(files)
	if img, ok := cache.Get(*frame); ok {
		fmt.Printf("frame %d: image %dx%d (%s)\n", *frame, img.Width, img.Height, img.ColorSpace)
	} else {
		fmt.Printf("frame %d: no image at this index\n", *frame)
	}
}

func loadCurve(path string) ([]curve.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var tuples [][]any
	if err := json.Unmarshal(data, &tuples); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	points := make([]curve.Point, 0, len(tuples))
	for i, t := range tuples {
		p, err := curve.PointFromLegacy(t)
		if err != nil {
			return nil, fmt.Errorf("tuple %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func sequenceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
