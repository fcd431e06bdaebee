package mirrorb

import (
	platformcore "github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// Glyph is how one tile looks in a two-column terminal cell.
type Glyph struct {
	Text  string
	Color platformcore.Color
}

// Theme maps tile codes to glyphs.
type Theme struct {
	Name   string
	Glyphs map[core.Tile]Glyph
}

// Glyph returns the glyph for t. Unknown tiles draw as blanks.
func (th Theme) Glyph(t core.Tile) (Glyph, bool) {
	g, ok := th.Glyphs[t]
	return g, ok
}

// withShapes fills in tiles that share a shape across reflectors, lit
// reflectors and beams.
func withShapes(glyphs map[core.Tile]Glyph, shapes [core.Orientations]string) map[core.Tile]Glyph {
	for k, r := range core.Canonical {
		glyphs[r] = Glyph{shapes[k], platformcore.ColorBrightWhite}
		glyphs[core.SplitFor(r)] = Glyph{shapes[k], platformcore.ColorBrightYellow}
	}
	return glyphs
}

// UnicodeTheme draws with box-drawing characters.
var UnicodeTheme = Theme{
	Name: "unicode",
	Glyphs: withShapes(map[core.Tile]Glyph{
		core.FloorEven:  {"· ", platformcore.ColorGray},
		core.FloorOdd:   {"· ", platformcore.ColorDarkGray},
		core.BlockTile:  {"██", platformcore.ColorGray},
		core.Orb:        {"○ ", platformcore.ColorMagenta},
		core.OrbActive:  {"● ", platformcore.ColorBrightMagenta},
		core.SourceU:    {"▲ ", platformcore.ColorCyan},
		core.SourceD:    {"▼ ", platformcore.ColorCyan},
		core.SourceL:    {"◀ ", platformcore.ColorCyan},
		core.SourceR:    {"▶ ", platformcore.ColorCyan},
		core.BeamH:      {"──", platformcore.ColorBrightYellow},
		core.BeamV:      {"│ ", platformcore.ColorBrightYellow},
		core.BeamSplitX: {"┼─", platformcore.ColorBrightYellow},
		core.BeamStopU:  {"╳ ", platformcore.ColorYellow},
		core.BeamStopD:  {"╳ ", platformcore.ColorYellow},
		core.BeamStopL:  {"╳ ", platformcore.ColorYellow},
		core.BeamStopR:  {"╳ ", platformcore.ColorYellow},
	}, [core.Orientations]string{"┌─", "┐ ", "┬─", "├─", "└─", "┘ ", "┤ ", "┴─"}),
}

// ASCIITheme draws with plain ASCII for terminals without box drawing.
var ASCIITheme = Theme{
	Name: "ascii",
	Glyphs: withShapes(map[core.Tile]Glyph{
		core.FloorEven:  {". ", platformcore.ColorGray},
		core.FloorOdd:   {". ", platformcore.ColorDarkGray},
		core.BlockTile:  {"##", platformcore.ColorGray},
		core.Orb:        {"o ", platformcore.ColorMagenta},
		core.OrbActive:  {"@ ", platformcore.ColorBrightMagenta},
		core.SourceU:    {"^ ", platformcore.ColorCyan},
		core.SourceD:    {"v ", platformcore.ColorCyan},
		core.SourceL:    {"< ", platformcore.ColorCyan},
		core.SourceR:    {"> ", platformcore.ColorCyan},
		core.BeamH:      {"--", platformcore.ColorBrightYellow},
		core.BeamV:      {"| ", platformcore.ColorBrightYellow},
		core.BeamSplitX: {"+-", platformcore.ColorBrightYellow},
		core.BeamStopU:  {"x ", platformcore.ColorYellow},
		core.BeamStopD:  {"x ", platformcore.ColorYellow},
		core.BeamStopL:  {"x ", platformcore.ColorYellow},
		core.BeamStopR:  {"x ", platformcore.ColorYellow},
	}, [core.Orientations]string{",-", "-.", "T-", "|-", "`-", "-'", "-|", "^-"}),
}

// ThemeByName returns the named theme, falling back to unicode.
func ThemeByName(name string) Theme {
	if name == ASCIITheme.Name {
		return ASCIITheme
	}
	return UnicodeTheme
}
