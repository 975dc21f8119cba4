// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package imagecache is a thread-safe, bounded LRU cache over a frame-
// indexed image sequence, grounded on the teacher's asset depot
// (asset.go, assets.go) and its background loader (loader.go). It is
// independent of the curve/point/segment model (SPEC_FULL.md MODULE D) —
// a frame number is just an index into an on-disk file list.
package imagecache

import (
	"fmt"
	"sync"
	"time"

	curve "github.com/galvanized/curvekit"
)

// Image is a decoded frame, normalized to 8-bit-per-channel RGBA
// regardless of the source format (see standard.go and hdr.go).
type Image struct {
	Width, Height int
	Pix           []byte // len == Width*Height*4, stride Width*4
	ColorSpace    string
}

// Progress reports preload-worker completion, mirroring the original
// tool's cache_progress property (SPEC_FULL.md item 5).
type Progress struct {
	Loaded int
	Total  int
}

// Cache is a bounded, LRU-evicting store of decoded Images keyed by
// frame number, with an optional background preload worker. The zero
// value is not usable; construct with New.
type Cache struct {
	mu         sync.Mutex
	maxSize    int
	images     map[int]*Image
	lruOrder   []int
	imageFiles []string
	loaders    *loaderRegistry
	logger     curve.Logger

	workerMu sync.Mutex
	worker   *preloadWorker
	progress chan Progress

	defaultWindow int
}

// New constructs a Cache bounded to maxSize resident images. maxSize
// must be positive.
func New(maxSize int, opts ...Option) (*Cache, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: max size must be positive, got %d", curve.ErrInvalidConfig, maxSize)
	}
	c := &Cache{
		maxSize:       maxSize,
		images:        make(map[int]*Image),
		loaders:       newDefaultLoaderRegistry(),
		logger:        curve.DefaultLogger,
		progress:      make(chan Progress, 1),
		defaultWindow: 20,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetImageSequence replaces the backing file list. Any running preload
// worker is stopped first, and the cache is cleared — frame numbers are
// only meaningful relative to one sequence.
func (c *Cache) SetImageSequence(files []string) {
	c.stopPreload()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imageFiles = append([]string(nil), files...)
	c.images = make(map[int]*Image)
	c.lruOrder = nil
}

// ClearCache drops every resident image without touching the backing
// file list or a running preload worker.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = make(map[int]*Image)
	c.lruOrder = nil
}

// Get returns the decoded image for frame, loading and caching it on a
// miss. It reports ok=false for an out-of-range frame or an
// unrecoverable decode failure (logged, never returned as an error —
// spec.md §7 treats a frame miss as a normal, queryable outcome).
func (c *Cache) Get(frame int) (*Image, bool) {
	c.mu.Lock()
	if frame < 0 || frame >= len(c.imageFiles) {
		c.mu.Unlock()
		return nil, false
	}
	if img, ok := c.images[frame]; ok {
		c.touch(frame)
		c.mu.Unlock()
		return img, true
	}
	path := c.imageFiles[frame]
	c.mu.Unlock()

	img, err := c.loaders.load(path)
	if err != nil {
		c.logger.Printf("imagecache: load frame %d (%s): %v", frame, path, err)
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if frame >= len(c.imageFiles) || c.imageFiles[frame] != path {
		// The sequence changed underneath this load; the result no
		// longer corresponds to any live frame.
		return img, true
	}
	c.insertIfAbsent(frame, img)
	return img, true
}

// insertIfAbsent adds img at frame unless already present, then evicts
// down to maxSize. Callers must hold c.mu.
func (c *Cache) insertIfAbsent(frame int, img *Image) {
	if _, ok := c.images[frame]; ok {
		c.touch(frame)
		return
	}
	c.images[frame] = img
	c.lruOrder = append(c.lruOrder, frame)
	for len(c.images) > c.maxSize {
		oldest := c.lruOrder[0]
		c.lruOrder = c.lruOrder[1:]
		delete(c.images, oldest)
	}
}

// touch moves frame to the most-recently-used end. Callers must hold c.mu.
func (c *Cache) touch(frame int) {
	for i, f := range c.lruOrder {
		if f == frame {
			c.lruOrder = append(c.lruOrder[:i], c.lruOrder[i+1:]...)
			break
		}
	}
	c.lruOrder = append(c.lruOrder, frame)
}

// PreloadRange starts a background worker that loads every frame in
// [start, end] not already resident, clamped to the sequence bounds.
// If every frame in range is already resident this is a no-op;
// otherwise any previously running worker is stopped first.
func (c *Cache) PreloadRange(start, end int) {
	c.mu.Lock()
	n := len(c.imageFiles)
	c.mu.Unlock()
	if n == 0 {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > n-1 {
		end = n - 1
	}
	if start > end {
		return
	}
	frames := make([]int, 0, end-start+1)
	for f := start; f <= end; f++ {
		frames = append(frames, f)
	}
	c.startPreload(frames)
}

// PreloadAround preloads the window [center-radius, center+radius].
func (c *Cache) PreloadAround(center, radius int) {
	c.PreloadRange(center-radius, center+radius)
}

// PreloadAroundDefault preloads using the cache's configured default
// window (WithPreloadWindow, or 20 if never set).
func (c *Cache) PreloadAroundDefault(center int) {
	c.PreloadAround(center, c.defaultWindow)
}

// Progress returns a channel of preload progress updates. Sends are
// best-effort — a slow or absent reader never blocks the worker.
func (c *Cache) Progress() <-chan Progress {
	return c.progress
}

// startPreload filters out frames already resident and, if any remain,
// stops any running worker and starts a new one over them.
func (c *Cache) startPreload(frames []int) {
	c.mu.Lock()
	needed := make([]int, 0, len(frames))
	files := make([]string, len(c.imageFiles))
	copy(files, c.imageFiles)
	for _, f := range frames {
		if _, ok := c.images[f]; !ok {
			needed = append(needed, f)
		}
	}
	c.mu.Unlock()
	if len(needed) == 0 {
		return
	}
	c.stopPreload()

	w := newPreloadWorker(needed, files, c.loaders, c.logger)
	c.workerMu.Lock()
	c.worker = w
	c.workerMu.Unlock()

	go w.run()
	go c.drain(w)
}

// drain applies a worker's deliveries to the cache and forwards its
// progress updates until the worker finishes. A delivery for a frame
// outside the current file list is dropped.
func (c *Cache) drain(w *preloadWorker) {
	deliverc := w.deliverc
	progressc := w.progressc
	for deliverc != nil || progressc != nil {
		select {
		case d, ok := <-deliverc:
			if !ok {
				deliverc = nil
				continue
			}
			c.mu.Lock()
			if d.frame < len(c.imageFiles) {
				c.insertIfAbsent(d.frame, d.image)
			}
			c.mu.Unlock()
		case p, ok := <-progressc:
			if !ok {
				progressc = nil
				continue
			}
			select {
			case c.progress <- p:
			default:
				select {
				case <-c.progress:
				default:
				}
				select {
				case c.progress <- p:
				default:
				}
			}
		}
	}
}

// stopPreload requests the running worker (if any) to stop and waits
// up to one second for it to acknowledge. A worker that misses the
// deadline is detached, not killed — it keeps running and its drain
// goroutine keeps consuming its output until it exits on its own.
func (c *Cache) stopPreload() {
	c.workerMu.Lock()
	w := c.worker
	c.worker = nil
	c.workerMu.Unlock()
	if w == nil {
		return
	}
	close(w.stopc)
	select {
	case <-w.donec:
	case <-time.After(1 * time.Second):
		c.logger.Printf("imagecache: %v, detaching", curve.ErrWorkerTimeout)
	}
}
