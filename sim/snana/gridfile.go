package snana

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/medband-sim/medband-sim/sim"
)

// Keys of a TEXT grid dump. A key line starts with "<KEY>:"; its values may
// continue on following lines until the next key. '#' starts a comment.
const (
	keyBands    = "BANDS"
	keyLumiPar  = "LUMIPAR"
	keyColorLaw = "COLORLAW"
	keyColorPar = "COLORPAR"
	keyRedshift = "REDSHIFT"
	keyTRest    = "TREST"
	keyLCMatrix = "LCMATRIX"
)

var gridKeys = map[string]bool{
	keyBands: true, keyLumiPar: true, keyColorLaw: true, keyColorPar: true,
	keyRedshift: true, keyTRest: true, keyLCMatrix: true,
}

const maxGridLine = 16 << 20

// LoadGridFile reads a TEXT grid dump. The table is named after the file.
func LoadGridFile(path string) (*sim.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := ReadGrid(f, name)
	if err != nil {
		return nil, fmt.Errorf("read grid %q: %w", path, err)
	}
	return t, nil
}

// ReadGrid parses a TEXT grid dump. Unknown keys are errors. LCMATRIX
// values are in row-major order over [lumipar, colorlaw, colorpar, z, band, trest].
func ReadGrid(r io.Reader, name string) (*sim.Table, error) {
	fields := make(map[string][]string)
	var key string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxGridLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		toks := strings.Fields(line)
		if len(toks) == 0 {
			continue
		}
		if k, ok := strings.CutSuffix(toks[0], ":"); ok {
			if !gridKeys[k] {
				return nil, fmt.Errorf("line %d: unknown key %q", lineNo, k)
			}
			if _, dup := fields[k]; dup {
				return nil, fmt.Errorf("line %d: duplicate key %q", lineNo, k)
			}
			key = k
			fields[key] = []string{}
			toks = toks[1:]
		} else if key == "" {
			return nil, fmt.Errorf("line %d: values before first key", lineNo)
		}
		fields[key] = append(fields[key], toks...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for k := range gridKeys {
		if _, ok := fields[k]; !ok {
			return nil, fmt.Errorf("missing key %q", k)
		}
	}
	bands := []byte(strings.Join(fields[keyBands], ""))
	nums := make(map[string][]float64, len(fields))
	for k, toks := range fields {
		if k == keyBands {
			continue
		}
		vals := make([]float64, len(toks))
		for i, tok := range toks {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", k, i, err)
			}
			vals[i] = v
		}
		nums[k] = vals
	}
	return sim.NewTable(name, bands,
		nums[keyLumiPar], nums[keyColorLaw], nums[keyColorPar],
		nums[keyRedshift], nums[keyTRest], nums[keyLCMatrix])
}
