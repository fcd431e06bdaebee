package levels

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

//go:embed levels.dat
var embedded string

// Parse reads every record from r. Lines shorter than two characters are
// skipped. The first bad record fails the whole parse.
func Parse(r io.Reader) ([]core.Block, error) {
	var blocks []core.Block
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) < 2 {
			continue
		}
		b, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: reading: %w", err)
	}
	if len(blocks) == 0 {
		return nil, &LevelFileError{Line: lineNo, Reason: "no levels"}
	}
	return blocks, nil
}

// Load parses r into a catalog.
func Load(r io.Reader) (*core.Catalog, error) {
	blocks, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return core.NewCatalog(blocks), nil
}

// LoadFile parses the level file at path.
func LoadFile(path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog built into the binary.
func Default() (*core.Catalog, error) {
	return Load(strings.NewReader(embedded))
}

// Open returns the catalog at path, or the built-in one when path is empty.
func Open(path string) (*core.Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
