package font

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/font/ot"
)

// ScalableFont is a font loaded from disk (or from memory), parsed both
// into an sfnt container and into our own table reader. The two views
// share the Binary bytes.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
	OT       *ot.Font
}

// LoadOpenTypeFont reads a font file and parses it.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses a font from its binary representation.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font binary unparsable")
	}
	f.OT, err = ot.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// FamilyFromFilename derives a family name from a font file's name, the
// part of the base name before the first hyphen.
func FamilyFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if hyphen := strings.Index(base, "-"); hyphen > 0 {
		base = base[:hyphen]
	}
	return base
}

// StyleSuffix returns the style part of a font's full name, the segment
// after the first hyphen. A name without a hyphen has no style suffix.
func StyleSuffix(fullname string) string {
	if hyphen := strings.Index(fullname, "-"); hyphen >= 0 {
		return fullname[hyphen+1:]
	}
	return ""
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It
// is always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Fontname = "Go Sans"
	gofont.Filepath = "internal"
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches parsed fonts by file path. A registry belongs to one
// proofing session; concurrent use is safe.
type Registry struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}

func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]*ScalableFont)}
}

// Load returns the cached font for a path, reading and parsing the file
// on first use.
func (fr *Registry) Load(path string) (*ScalableFont, error) {
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[path]; ok {
		return f, nil
	}
	f, err := LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("registry caches font %s from %s", f.Fontname, path)
	fr.fonts[path] = f
	return f, nil
}

// Store places an already parsed font in the cache under a caller-chosen
// key.
func (fr *Registry) Store(key string, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fr.fonts[key] = f
}

// Invalidate drops one cache entry, e.g. after the file changed on disk.
func (fr *Registry) Invalidate(path string) {
	fr.Lock()
	defer fr.Unlock()
	delete(fr.fonts, path)
}

// Reset drops all cache entries.
func (fr *Registry) Reset() {
	fr.Lock()
	defer fr.Unlock()
	fr.fonts = make(map[string]*ScalableFont)
}
