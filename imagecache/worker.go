// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package imagecache

import curve "github.com/galvanized/curvekit"

// preloadWorker loads a fixed list of frames off disk on its own
// goroutine and delivers each decoded image back to the cache owner
// over a channel, grounded on the teacher's runLoader (loader.go): one
// goroutine owns disk I/O, a channel hands finished work back to the
// owner, and a stop channel gives the owner a cooperative way to ask
// it to give up early.
type preloadWorker struct {
	frames     []int
	imageFiles []string
	loaders    *loaderRegistry
	logger     curve.Logger

	stopc     chan struct{}
	donec     chan struct{}
	deliverc  chan delivery
	progressc chan Progress
}

// delivery is one loaded frame crossing from the worker to the cache's
// drain goroutine.
type delivery struct {
	frame int
	image *Image
}

func newPreloadWorker(frames []int, imageFiles []string, loaders *loaderRegistry, logger curve.Logger) *preloadWorker {
	return &preloadWorker{
		frames:     frames,
		imageFiles: imageFiles,
		loaders:    loaders,
		logger:     logger,
		stopc:      make(chan struct{}),
		donec:      make(chan struct{}),
		deliverc:   make(chan delivery),
		progressc:  make(chan Progress, 1),
	}
}

// run loads every frame in order, delivering each successful decode and
// silently skipping a frame that falls outside its own copy of
// imageFiles or that fails to decode (logged). It
// returns early, without closing anything abnormally, the moment stopc
// is closed.
func (w *preloadWorker) run() {
	defer close(w.donec)
	defer close(w.deliverc)
	defer close(w.progressc)

	total := len(w.frames)
	loaded := 0
	for _, frame := range w.frames {
		select {
		case <-w.stopc:
			return
		default:
		}

		if frame < 0 || frame >= len(w.imageFiles) {
			continue
		}
		img, err := w.loaders.load(w.imageFiles[frame])
		if err != nil {
			w.logger.Printf("imagecache: preload frame %d failed: %v", frame, err)
			continue
		}
		loaded++

		select {
		case w.deliverc <- delivery{frame: frame, image: img}:
		case <-w.stopc:
			return
		}

		select {
		case w.progressc <- Progress{Loaded: loaded, Total: total}:
		default:
		}
	}
}
