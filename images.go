package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/remeh/sizedwaitgroup"
)

// imageLoader materializes frame refs into GPU images in the background.
// Refs are cached forever once resolved; a failed ref is cached as failed
// so it is not refetched every frame. The renderer polls readiness via
// image(); nothing calls back into the world.
type imageLoader struct {
	mu      sync.Mutex
	images  map[string]*ebiten.Image
	failed  map[string]bool
	pending map[string]struct{}
}

func newImageLoader() *imageLoader {
	return &imageLoader{
		images:  make(map[string]*ebiten.Image),
		failed:  make(map[string]bool),
		pending: make(map[string]struct{}),
	}
}

// ensureLoaded kicks off materialization of every frame in the asset set.
// Idempotent: refs already loaded, failed, or in flight are skipped. Decode
// work is bounded to one goroutine per CPU.
func (l *imageLoader) ensureLoaded(set *AssetSet) {
	if set == nil {
		return
	}
	fresh := l.claim(set.refs())
	if len(fresh) == 0 {
		return
	}
	go func() {
		wg := sizedwaitgroup.New(runtime.NumCPU())
		for _, ref := range fresh {
			wg.Add()
			go func(ref string) {
				defer wg.Done()
				l.fetch(ref)
			}(ref)
		}
		wg.Wait()
		logDebug("materialized %d frames for %s", len(fresh), set.Name)
	}()
}

// ensureRef materializes a single standalone ref, such as the backdrop.
func (l *imageLoader) ensureRef(ref string) {
	if len(l.claim([]string{ref})) == 0 {
		return
	}
	go l.fetch(ref)
}

// claim filters refs down to ones not yet known and marks them in flight.
func (l *imageLoader) claim(refs []string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var fresh []string
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, ok := l.images[ref]; ok {
			continue
		}
		if l.failed[ref] {
			continue
		}
		if _, ok := l.pending[ref]; ok {
			continue
		}
		l.pending[ref] = struct{}{}
		fresh = append(fresh, ref)
	}
	return fresh
}

func (l *imageLoader) fetch(ref string) {
	img, err := decodeAssetRef(ref)
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pending, ref)
	if err != nil {
		logError("asset %s: %v", shortRef(ref), err)
		l.failed[ref] = true
		return
	}
	l.images[ref] = ebiten.NewImageFromImage(img)
}

// image returns the materialized image for a ref, or nil while it is still
// loading or after it failed. Callers skip drawing on nil.
func (l *imageLoader) image(ref string) *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.images[ref]
}

// done reports whether materialization for a ref has finished, whether it
// succeeded or not.
func (l *imageLoader) done(ref string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.images[ref]; ok {
		return true
	}
	return l.failed[ref]
}

// decodeAssetRef resolves a frame ref to pixels. Refs come in three shapes:
// base64 data URIs (the usual avatar frame encoding), http(s) URLs, and
// local file paths.
func decodeAssetRef(ref string) (image.Image, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		i := strings.Index(ref, "base64,")
		if i < 0 {
			return nil, fmt.Errorf("data uri without base64 payload")
		}
		raw, err := base64.StdEncoding.DecodeString(ref[i+len("base64,"):])
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		resp, err := http.Get(ref)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %v: %v", ref, resp.Status)
		}
		img, _, err := image.Decode(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	}
}
