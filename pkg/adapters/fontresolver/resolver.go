// Package fontresolver resolves family/weight/size triples to font faces.
//
// Named families are loaded from TrueType/OpenType files in a font
// directory, using the static file names Google Fonts ships
// (Montserrat-SemiBold.ttf, Inter-Bold.ttf, ...). Anything that cannot be
// found falls back to the embedded Go sans-serif at the same weight and size.
package fontresolver

import (
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/captionframe/pkg/ports"
)

// Families lists the selectable font families.
var Families = []string{"Montserrat", "Inter", "Poppins", "Roboto"}

// weightNames maps CSS weights to static font file suffixes.
var weightNames = map[int]string{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

// WeightName returns the static font file suffix for a CSS weight, rounding
// to the nearest hundred.
func WeightName(weight int) string {
	w := (weight + 50) / 100 * 100
	if w < 100 {
		w = 100
	}
	if w > 900 {
		w = 900
	}
	return weightNames[w]
}

type faceKey struct {
	family string
	weight int
	size   float64
}

type fontKey struct {
	family string
	weight int
}

// Resolver implements ports.FontResolver. Faces are cached; it is safe for
// concurrent use but the faces it returns are not.
type Resolver struct {
	dir    string
	fs     ports.FileSystem
	logger ports.Logger

	mu     sync.Mutex
	fonts  map[fontKey]*opentype.Font
	faces  map[faceKey]font.Face
	missed map[fontKey]bool
}

// New creates a resolver that looks for font files in dir. An empty dir
// disables file lookup and every family uses the fallback.
func New(dir string, fs ports.FileSystem, logger ports.Logger) *Resolver {
	return &Resolver{
		dir:    dir,
		fs:     fs,
		logger: logger.WithComponent("fonts"),
		fonts:  make(map[fontKey]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
		missed: make(map[fontKey]bool),
	}
}

// Families returns the families with a font file present for at least
// one weight.
func (r *Resolver) Families() []string {
	var found []string
	for _, family := range Families {
		for w := 300; w <= 900; w += 100 {
			if _, ok := r.load(family, w); ok {
				found = append(found, family)
				break
			}
		}
	}
	return found
}

// Face returns a face for spec, falling back to the Go sans-serif.
func (r *Resolver) Face(spec ports.FontSpec) font.Face {
	key := faceKey{family: spec.Family, weight: spec.Weight, size: spec.SizePx}

	r.mu.Lock()
	if face, ok := r.faces[key]; ok {
		r.mu.Unlock()
		return face
	}
	r.mu.Unlock()

	f, ok := r.load(spec.Family, spec.Weight)
	if !ok {
		f = fallback(spec.Weight)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.SizePx,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingNone,
	})
	if err != nil {
		face, _ = opentype.NewFace(fallback(spec.Weight), &opentype.FaceOptions{Size: spec.SizePx, DPI: 72})
	}

	r.mu.Lock()
	r.faces[key] = face
	r.mu.Unlock()
	return face
}

// load returns the parsed font file for family/weight.
func (r *Resolver) load(family string, weight int) (*opentype.Font, bool) {
	key := fontKey{family: family, weight: weight}

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.fonts[key]; ok {
		return f, true
	}
	if r.missed[key] {
		return nil, false
	}

	f, err := r.parse(family, weight)
	if err != nil {
		r.missed[key] = true
		r.logger.Debug("Font %s %d not found, using fallback sans-serif", family, weight)
		return nil, false
	}
	r.fonts[key] = f
	r.logger.Debug("Loaded font %s", fmt.Sprintf("%s-%s", family, WeightName(weight)))
	return f, true
}

func (r *Resolver) parse(family string, weight int) (*opentype.Font, error) {
	if r.dir == "" || family == "" {
		return nil, fmt.Errorf("no font directory")
	}
	name := fmt.Sprintf("%s-%s", family, WeightName(weight))
	for _, ext := range []string{".ttf", ".otf"} {
		data, err := r.fs.ReadFile(filepath.Join(r.dir, name+ext))
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name+ext, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("font %s not found in %s", name, r.dir)
}

var (
	fallbackOnce sync.Once
	goRegular    *opentype.Font
	goMedium     *opentype.Font
	goBold       *opentype.Font
)

// fallback returns the embedded Go font closest to weight.
func fallback(weight int) *opentype.Font {
	fallbackOnce.Do(func() {
		goRegular = mustParse(goregular.TTF)
		goMedium = mustParse(gomedium.TTF)
		goBold = mustParse(gobold.TTF)
	})
	switch {
	case weight >= 700:
		return goBold
	case weight >= 500:
		return goMedium
	default:
		return goRegular
	}
}

func mustParse(data []byte) *opentype.Font {
	f, err := opentype.Parse(data)
	if err != nil {
		panic(fmt.Sprintf("parse embedded font: %v", err))
	}
	return f
}

// Ensure Resolver implements ports.FontResolver
var _ ports.FontResolver = (*Resolver)(nil)
