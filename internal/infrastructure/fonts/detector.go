// Package fonts locates the TrueType font the clock is drawn with.
package fonts

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/logging"
)

// Fallback chain for the clock face (unexported to prevent modification).
var clockFallbackChain = []string{
	"DejaVu Sans",
	"Noto Sans",
	"Liberation Sans",
	"Fira Sans",
	"FreeSans",
}

// Well-known locations tried when fontconfig is missing.
var staticFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

// ClockFallbackChain returns the font families tried for the clock, in order.
func ClockFallbackChain() []string {
	result := make([]string, len(clockFallbackChain))
	copy(result, clockFallbackChain)
	return result
}

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Detector implements port.FontResolver using fontconfig's fc-list and
// fc-match commands.
type Detector struct {
	mu             sync.RWMutex
	cachedFonts    []string
	cachePopulated bool

	run         runFunc
	lookPath    func(string) (string, error)
	staticPaths []string
}

// NewDetector creates a new font detector.
func NewDetector() *Detector {
	return &Detector{
		run:         runCommand,
		lookPath:    exec.LookPath,
		staticPaths: staticFontPaths,
	}
}

// IsAvailable returns true if fontconfig's commands are available.
func (d *Detector) IsAvailable(_ context.Context) bool {
	if _, err := d.lookPath("fc-list"); err != nil {
		return false
	}
	_, err := d.lookPath("fc-match")
	return err == nil
}

// GetAvailableFonts returns the font family names installed on the system.
func (d *Detector) GetAvailableFonts(ctx context.Context) ([]string, error) {
	log := logging.FromContext(ctx)

	d.mu.RLock()
	if d.cachePopulated {
		fonts := d.cachedFonts
		d.mu.RUnlock()
		return fonts, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Double-check after acquiring write lock.
	if d.cachePopulated {
		return d.cachedFonts, nil
	}

	fonts, err := d.queryFonts(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to query system fonts")
		return nil, err
	}

	d.cachedFonts = fonts
	d.cachePopulated = true
	log.Debug().Int("count", len(fonts)).Msg("cached system fonts")

	return fonts, nil
}

// ResolveFontFile implements port.FontResolver.
func (d *Detector) ResolveFontFile(ctx context.Context, override string) (string, error) {
	log := logging.FromContext(ctx)

	if override != "" {
		if !isFile(override) {
			return "", fmt.Errorf("font file %s: %w", override, port.ErrNoFont)
		}
		return override, nil
	}

	if d.IsAvailable(ctx) {
		if path, ok := d.matchChain(ctx); ok {
			return path, nil
		}
	}

	for _, path := range d.staticPaths {
		if isFile(path) {
			log.Debug().Str("font_file", path).Msg("using well-known font path")
			return path, nil
		}
	}

	return "", fmt.Errorf("tried %s: %w", strings.Join(clockFallbackChain, ", "), port.ErrNoFont)
}

// matchChain returns the file of the first installed family of the chain.
func (d *Detector) matchChain(ctx context.Context) (string, bool) {
	log := logging.FromContext(ctx)

	available, err := d.GetAvailableFonts(ctx)
	if err != nil {
		return "", false
	}

	installed := make(map[string]struct{}, len(available))
	for _, f := range available {
		installed[f] = struct{}{}
	}

	for _, family := range clockFallbackChain {
		if _, ok := installed[family]; !ok {
			continue
		}
		out, err := d.run(ctx, "fc-match", "--format=%{file}", family)
		if err != nil {
			log.Debug().Err(err).Str("family", family).Msg("fc-match failed")
			continue
		}
		path := strings.TrimSpace(string(out))
		if !isTrueType(path) || !isFile(path) {
			continue
		}
		log.Debug().Str("family", family).Str("font_file", path).Msg("selected font from fallback chain")
		return path, true
	}
	return "", false
}

// queryFonts executes fc-list and parses the output.
func (d *Detector) queryFonts(ctx context.Context) ([]string, error) {
	output, err := d.run(ctx, "fc-list", ":", "family")
	if err != nil {
		return nil, err
	}

	fontSet := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// fc-list may return comma-separated families for fonts with aliases.
		// e.g., "DejaVu Sans,DejaVu Sans Light"
		for _, family := range strings.Split(line, ",") {
			family = strings.TrimSpace(family)
			if family != "" {
				fontSet[family] = struct{}{}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	fonts := make([]string, 0, len(fontSet))
	for font := range fontSet {
		fonts = append(fonts, font)
	}

	return fonts, nil
}

func isTrueType(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ port.FontResolver = (*Detector)(nil)
