package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/webp"
)

type Request struct {
	Key  string
	Path string
}

type Result struct {
	Key   string
	Image image.Image
	Err   error
}

// Loader decodes images off the caller's goroutine. Send on Req, receive on
// Res.
type Loader struct {
	Req  chan Request
	Res  chan Result
	quit chan struct{}

	closeOnce sync.Once
}

func NewLoader() *Loader {
	l := &Loader{
		Req:  make(chan Request, 16),
		Res:  make(chan Result, 16),
		quit: make(chan struct{}),
	}

	go l.loop()

	return l
}

// Close stops the loader. Safe to call more than once.
func (l *Loader) Close() {
	l.closeOnce.Do(func() { close(l.quit) })
}

func (l *Loader) loop() {
	for {
		select {
		case <-l.quit:
			return
		case req := <-l.Req:
			img, err := loadImage(req.Path)
			select {
			case <-l.quit:
				return
			case l.Res <- Result{Key: req.Key, Image: img, Err: err}:
			}
		}
	}
}

// Resolve returns the first dir/name that exists, or name itself when none
// does.
func Resolve(name string, dirs ...string) string {
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
