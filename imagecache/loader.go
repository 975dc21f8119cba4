// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package imagecache

import (
	"fmt"
	"path/filepath"
	"strings"

	curve "github.com/galvanized/curvekit"
)

// Loader decodes one image file from disk into the cache's canonical
// in-memory form.
type Loader interface {
	Load(path string) (*Image, error)
}

// loaderRegistry dispatches a path to a Loader by its file extension,
// grounded on the teacher's extension-keyed loader selection in
// load/loader.go.
type loaderRegistry struct {
	byExt map[string]Loader
}

func newDefaultLoaderRegistry() *loaderRegistry {
	r := &loaderRegistry{byExt: make(map[string]Loader)}
	std := StandardLoader{}
	r.register(".png", std)
	r.register(".jpg", std)
	r.register(".jpeg", std)
	r.register(".bmp", std)
	r.register(".tif", std)
	r.register(".tiff", std)
	r.register(".exr", HDRLoader{})
	return r
}

func (r *loaderRegistry) register(ext string, l Loader) {
	r.byExt[strings.ToLower(ext)] = l
}

func (r *loaderRegistry) load(path string) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: no loader registered for extension %q", curve.ErrLoadFailed, ext)
	}
	img, err := l.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", curve.ErrLoadFailed, err)
	}
	return img, nil
}
