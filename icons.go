package mindmap

// PlaceholderGlyph is shown for icon names that cannot be resolved
// (Font Awesome's question-circle).
const PlaceholderGlyph = "\uf059"

// IconResolver maps a symbolic icon name to a displayable glyph.
type IconResolver interface {
	Glyph(name string) string
}

// GlyphLookup resolves a name against some glyph font. ok is false for
// unknown names.
type GlyphLookup func(name string) (glyph string, ok bool)

// GlyphTable is an IconResolver that caches lookups per name for the life
// of the session and substitutes PlaceholderGlyph for misses.
type GlyphTable struct {
	lookup GlyphLookup
	cache  map[string]string

	// OnMiss, if set, is called once per unresolvable name.
	OnMiss func(name string)
}

// NewGlyphTable wraps lookup. A nil lookup uses the built-in Font Awesome
// table.
func NewGlyphTable(lookup GlyphLookup) *GlyphTable {
	if lookup == nil {
		lookup = FontAwesomeLookup
	}
	return &GlyphTable{lookup: lookup, cache: make(map[string]string)}
}

// Glyph implements IconResolver.
func (g *GlyphTable) Glyph(name string) string {
	if glyph, ok := g.cache[name]; ok {
		return glyph
	}
	glyph, ok := g.lookup(name)
	if !ok {
		glyph = PlaceholderGlyph
		if g.OnMiss != nil {
			g.OnMiss(name)
		}
	}
	g.cache[name] = glyph
	return glyph
}

// FontAwesomeLookup resolves Font Awesome 4 icon names (without the "fa-"
// prefix) to their private-use code points.
func FontAwesomeLookup(name string) (string, bool) {
	r, ok := fontAwesome[name]
	if !ok {
		return "", false
	}
	return string(r), true
}

var fontAwesome = map[string]rune{
	"address-book":         0xf2b9,
	"anchor":               0xf13d,
	"archive":              0xf187,
	"arrow-right":          0xf061,
	"bell":                 0xf0f3,
	"book":                 0xf02d,
	"bookmark":             0xf02e,
	"bolt":                 0xf0e7,
	"bug":                  0xf188,
	"building":             0xf1ad,
	"calendar":             0xf073,
	"camera":               0xf030,
	"check":                0xf00c,
	"check-circle":         0xf058,
	"circle":               0xf111,
	"clock-o":              0xf017,
	"cloud":                0xf0c2,
	"code":                 0xf121,
	"cog":                  0xf013,
	"cogs":                 0xf085,
	"comment":              0xf075,
	"comments":             0xf086,
	"cube":                 0xf1b2,
	"cubes":                0xf1b3,
	"database":             0xf1c0,
	"desktop":              0xf108,
	"envelope":             0xf0e0,
	"exclamation":          0xf12a,
	"exclamation-triangle": 0xf071,
	"external-link":        0xf08e,
	"eye":                  0xf06e,
	"file":                 0xf15b,
	"file-text":            0xf15c,
	"flag":                 0xf024,
	"flask":                0xf0c3,
	"folder":               0xf07b,
	"folder-open":          0xf07c,
	"gear":                 0xf013,
	"github":               0xf09b,
	"globe":                0xf0ac,
	"heart":                0xf004,
	"home":                 0xf015,
	"info":                 0xf129,
	"info-circle":          0xf05a,
	"key":                  0xf084,
	"laptop":               0xf109,
	"leaf":                 0xf06c,
	"lightbulb-o":          0xf0eb,
	"link":                 0xf0c1,
	"list":                 0xf03a,
	"lock":                 0xf023,
	"map":                  0xf279,
	"map-marker":           0xf041,
	"pencil":               0xf040,
	"question":             0xf128,
	"question-circle":      0xf059,
	"rocket":               0xf135,
	"search":               0xf002,
	"server":               0xf233,
	"shield":               0xf132,
	"sitemap":              0xf0e8,
	"star":                 0xf005,
	"tag":                  0xf02b,
	"tags":                 0xf02c,
	"terminal":             0xf120,
	"times":                0xf00d,
	"trash":                0xf1f8,
	"user":                 0xf007,
	"users":                0xf0c0,
	"warning":              0xf071,
	"wrench":               0xf0ad,
}
