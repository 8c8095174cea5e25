package sprites

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/config"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
)

const (
	// placeholderSide is the edge length of the solid fallback sprite.
	placeholderSide = 30

	// maxAssetFileSize caps override files; anything bigger is rejected.
	maxAssetFileSize = 1 << 20
)

// allowedExtensions lists the override file formats the atlas will read.
var allowedExtensions = map[string]bool{
	".txt": true,
	".png": true,
}

// Atlas holds every resolved sprite for one game session. Sprites are loaded
// once at startup; Resolve never touches the filesystem afterwards.
type Atlas struct {
	sprites map[string]*Sprite
	logger  *log.Logger
}

// NewAtlas builds the atlas from built-in art, then applies overrides from
// cfg.Dir when set. A nil logger discards log output.
func NewAtlas(cfg config.AssetsConfig, logger *log.Logger) *Atlas {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &Atlas{
		sprites: make(map[string]*Sprite, len(Names())),
		logger:  logger,
	}

	for _, name := range Names() {
		a.sprites[name] = builtinSprite(name, cfg.Scale)
	}

	if cfg.Dir != "" {
		a.applyOverrides(cfg.Dir, cfg.Scale)
	}
	return a
}

// Resolve returns the sprite for a logical name. Names outside the allow-list
// resolve to the placeholder; the caller never sees an error.
func (a *Atlas) Resolve(name string) *Sprite {
	s, ok := a.sprites[name]
	if !ok {
		a.logger.Error("sprite name not in allow-list, using placeholder", "name", name)
		return Placeholder(name)
	}
	return s
}

// SpriteSize reports the pixel dimensions of a named sprite.
// The simulation consumes only this; masks stay with the rasterizer.
func (a *Atlas) SpriteSize(name string) (w, h int) {
	s := a.Resolve(name)
	return s.W, s.H
}

// Placeholder returns the solid fallback sprite substituted on any
// resolution failure.
func Placeholder(name string) *Sprite {
	mask := make([]bool, placeholderSide*placeholderSide)
	for i := range mask {
		mask[i] = true
	}
	return &Sprite{
		Name:  name,
		W:     placeholderSide,
		H:     placeholderSide,
		Mask:  mask,
		Color: core.ColorWhite,
	}
}

// applyOverrides replaces built-ins with sprites from dir. A name without an
// override file keeps its built-in; an override that exists but fails any
// check degrades to the placeholder, exactly like a broken shipped asset.
func (a *Atlas) applyOverrides(dir string, scale int) {
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		a.logger.Warn("assets directory unusable, keeping built-in sprites", "dir", dir, "err", err)
		return
	}
	root, err = filepath.Abs(root)
	if err != nil {
		a.logger.Warn("assets directory unusable, keeping built-in sprites", "dir", dir, "err", err)
		return
	}

	for _, name := range Names() {
		for _, ext := range []string{".txt", ".png"} {
			candidate := filepath.Join(root, name+ext)
			if _, err := os.Lstat(candidate); err != nil {
				continue // no override in this format
			}
			s, err := a.loadOverride(root, name, candidate, scale)
			if err != nil {
				a.logger.Warn("asset failed to load, using placeholder", "name", name, "path", candidate, "err", err)
				s = Placeholder(name)
			}
			a.sprites[name] = s
			break
		}
	}
}

// loadOverride reads one override file after validating it the same way the
// hardened loader validates shipped assets: extension allow-list, resolved
// path confined to the assets directory, and a file size cap.
func (a *Atlas) loadOverride(root, name, path string, scale int) (*Sprite, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		a.logger.Error("asset extension not allowed", "name", name, "ext", ext)
		return nil, fmt.Errorf("extension %s not allowed", ext)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	if resolved != root && !strings.HasPrefix(resolved, root+string(os.PathSeparator)) {
		a.logger.Error("path traversal detected, using placeholder", "name", name, "path", path)
		return nil, fmt.Errorf("path escapes assets directory")
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", resolved, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", resolved)
	}
	if info.Size() > maxAssetFileSize {
		a.logger.Error("asset file too large", "name", name, "size", info.Size())
		return nil, fmt.Errorf("file exceeds %d bytes", maxAssetFileSize)
	}

	var w, h int
	var mask []bool
	switch ext {
	case ".txt":
		w, h, mask, err = loadArtFile(resolved)
		if err == nil {
			w, h, mask = scaleMask(w, h, mask, scale)
		}
	case ".png":
		// PNG overrides are final art, used at native size after sanitization
		w, h, mask, err = loadPNGMask(resolved)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Info("sprite override loaded", "name", name, "path", resolved, "w", w, "h", h)
	return &Sprite{
		Name:  name,
		W:     w,
		H:     h,
		Mask:  mask,
		Color: builtinColor[name],
	}, nil
}

// loadArtFile reads a '1'/'0' bitmap text file.
func loadArtFile(path string) (w, h int, mask []bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return parseArt(rows)
}
