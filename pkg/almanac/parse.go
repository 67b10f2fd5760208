package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ib-77/rangemap/pkg/remap"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

type line struct {
	n    int
	text string
}

// ParseFile opens path and parses it as YAML when the extension is .yaml or
// .yml, as text otherwise.
func ParseFile(path string) (*Almanac, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(fh)
	default:
		return Parse(fh)
	}
}

// Parse reads the text form.
func Parse(r io.Reader) (*Almanac, error) {
	blocks, err := readBlocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, parseErrorf(0, "no seeds line")
	}

	seeds, err := parseSeeds(blocks[0])
	if err != nil {
		return nil, err
	}

	a := &Almanac{Seeds: seeds, seedsLine: blocks[0][0].n}
	for _, block := range blocks[1:] {
		stage, err := parseStage(block)
		if err != nil {
			return nil, err
		}
		a.Stages = append(a.Stages, stage)
	}
	return a, nil
}

// readBlocks groups non-blank lines into blank-line separated blocks.
func readBlocks(r io.Reader) ([][]line, error) {
	var (
		blocks  [][]line
		current []line
	)

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line{n: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}

func parseSeeds(block []line) ([]int64, error) {
	first := block[0]
	if !strings.HasPrefix(first.text, seedsPrefix) {
		return nil, parseErrorf(first.n, "no seeds prefix: %q", first.text)
	}

	var seeds []int64
	for i, l := range block {
		text := l.text
		if i == 0 {
			text = strings.TrimPrefix(text, seedsPrefix)
		}
		for _, token := range strings.Fields(text) {
			v, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, parseErrorf(l.n, "interpreting seed value %q", token)
			}
			seeds = append(seeds, v)
		}
	}
	return seeds, nil
}

func parseStage(block []line) (*remap.Stage, error) {
	header := block[0]
	name, ok := strings.CutSuffix(header.text, mapSuffix)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, parseErrorf(header.n, "not a map line: %q", header.text)
	}

	entries := make([]remap.Entry, 0, len(block)-1)
	for _, l := range block[1:] {
		entry, err := parseEntry(l)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", name, err)
		}
		entries = append(entries, entry)
	}

	stage, err := remap.NewStage(name, entries...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", header.n, err)
	}
	return stage, nil
}

func parseEntry(l line) (remap.Entry, error) {
	fields := strings.Fields(l.text)
	if len(fields) != 3 {
		return remap.Entry{}, parseErrorf(l.n, "want 3 integers, got %d fields", len(fields))
	}

	var values [3]int64
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return remap.Entry{}, parseErrorf(l.n, "interpreting entry value %q", field)
		}
		values[i] = v
	}
	if values[2] <= 0 {
		return remap.Entry{}, parseErrorf(l.n, "range length must be positive, got %d", values[2])
	}

	return remap.Entry{DestinationStart: values[0], SourceStart: values[1], Length: values[2]}, nil
}
