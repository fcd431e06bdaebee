// Package levels decodes the level file format into a core.Catalog.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// LevelFileError reports a malformed record. Line is 1-based.
type LevelFileError struct {
	Line   int
	Field  string
	Reason string
}

func (e *LevelFileError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("levels: line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("levels: line %d: %s: %s", e.Line, e.Field, e.Reason)
}

// macros is the ordered single-character rewrite table. Decompression walks
// it front to back; some expansions produce prefixes later entries consume.
var macros = [...]struct {
	short, long string
}{
	{`"`, "lA"}, {"/", ".&"}, {"|", ".i"}, {"`", "cB"},
	{"?", "~~"}, {">", ".z"}, {"<", ".h"}, {";", "#A"},
	{":", ".F"}, {"}", "kA"}, {"{", "jA"}, {"]", "bB"},
	{"[", ".g"}, {"=", "$A"}, {"_", "aB"}, {"0", ".!"},
	{"9", ".f"}, {"8", "hA"}, {"7", "iA"}, {"6", ".E"},
	{"5", ".D"}, {"4", ".~"}, {"2", "gA"}, {"1", ".e"},
	{"+", ".a"}, {"-", "fA"}, {")", "dA"}, {"(", ".C"},
	{"*", "cA"}, {"&", "eA"}, {"^", ".B"}, {"%", ".b"},
	{"$", ".d"}, {"#", ".c"}, {"@", ".A"}, {"!", "bA"},
	{"~", "aA"},
}

// Decompress undoes the macro stage of a payload.
func Decompress(payload string) string {
	for _, m := range macros {
		payload = strings.ReplaceAll(payload, m.short, m.long)
	}
	return payload
}

// Expand undoes the run-length stage: a lowercase letter is that many block
// markers, an uppercase letter that many floor markers, a dot one orb.
func Expand(s string) []byte {
	s = strings.ReplaceAll(s, ".", "_")
	run := ""
	for c := 'a'; c <= 'z'; c++ {
		run += "."
		s = strings.ReplaceAll(s, string(c), run)
	}
	run = ""
	for c := 'A'; c <= 'Z'; c++ {
		run += "x"
		s = strings.ReplaceAll(s, string(c), run)
	}
	return []byte(strings.ReplaceAll(s, "_", "o"))
}

// Encode compresses a marker grid into a payload that Decompress and
// Expand turn back into the same grid.
func Encode(grid []byte) string {
	var sb strings.Builder
	for i := 0; i < len(grid); {
		c := grid[i]
		if c == core.OrbMarker {
			sb.WriteByte('.')
			i++
			continue
		}
		j := i
		for j < len(grid) && grid[j] == c && j-i < 26 {
			j++
		}
		base := byte('A')
		if c == core.BlockMarker {
			base = 'a'
		}
		sb.WriteByte(base + byte(j-i-1))
		i = j
	}
	s := sb.String()
	for k := len(macros) - 1; k >= 0; k-- {
		s = strings.ReplaceAll(s, macros[k].long, macros[k].short)
	}
	return s
}

// ParseLine decodes one record. lineNo is used for error reporting only.
func ParseLine(line string, lineNo int) (core.Block, error) {
	fields := strings.SplitN(line, ",", 4)
	if len(fields) < 4 {
		return core.Block{}, &LevelFileError{Line: lineNo, Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields))}
	}

	var nums [3]int
	for i, name := range [3]string{"npcs", "sz", "norbs"} {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return core.Block{}, &LevelFileError{Line: lineNo, Field: name, Reason: "not a number"}
		}
		nums[i] = v
	}
	b := core.Block{Pieces: nums[0], Size: nums[1], Orbs: nums[2]}

	switch b.Pieces {
	case 8, 16, 24:
	default:
		return core.Block{}, &LevelFileError{Line: lineNo, Field: "npcs", Reason: fmt.Sprintf("%d is not 8, 16 or 24", b.Pieces)}
	}
	if b.Size < core.MinSize || b.Size > core.MaxSize {
		return core.Block{}, &LevelFileError{Line: lineNo, Field: "sz", Reason: fmt.Sprintf("%d outside %d..%d", b.Size, core.MinSize, core.MaxSize)}
	}

	b.Map = Expand(Decompress(strings.TrimSpace(fields[3])))
	if len(b.Map) != b.Size*b.Size {
		return core.Block{}, &LevelFileError{Line: lineNo, Field: "payload", Reason: fmt.Sprintf("expands to %d cells, expected %d", len(b.Map), b.Size*b.Size)}
	}
	for i, m := range b.Map {
		if m != core.BlockMarker && m != core.FloorMarker && m != core.OrbMarker {
			return core.Block{}, &LevelFileError{Line: lineNo, Field: "payload", Reason: fmt.Sprintf("unexpected byte %q at cell %d", m, i)}
		}
	}

	orbs := 0
	for i, m := range b.Map {
		if m != core.OrbMarker {
			continue
		}
		x, y := i%b.Size, i/b.Size
		if x == 0 || y == 0 || x == b.Size-1 || y == b.Size-1 {
			return core.Block{}, &LevelFileError{Line: lineNo, Field: "payload", Reason: fmt.Sprintf("orb on border at (%d,%d)", x, y)}
		}
		orbs++
	}
	if orbs != b.Orbs {
		return core.Block{}, &LevelFileError{Line: lineNo, Field: "norbs", Reason: fmt.Sprintf("declares %d orbs, map has %d", b.Orbs, orbs)}
	}
	return b, nil
}
