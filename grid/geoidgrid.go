package grid

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/geocts/ctsgo/ctserr"
	"github.com/pkg/errors"
)

// GeoidGrid is a text vertical geoid grid per spec.md §6: a header line of
// min_lat max_lat min_lon max_lon lat_step lon_step (degrees), followed by
// nrows x ncols undulation values in row-major order with latitude
// decreasing.
type GeoidGrid struct {
	MinLatDeg, MaxLatDeg, MinLonDeg, MaxLonDeg float64
	LatStepDeg, LonStepDeg                     float64
	Rows, Cols                                 int
	values                                     []float64 // row 0 is MaxLatDeg
}

// LoadGeoidGrid parses a geoid grid text file.
func LoadGeoidGrid(path string) (*GeoidGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open geoid grid")
	}
	defer f.Close()
	return parseGeoidGrid(bufio.NewScanner(f))
}

func parseGeoidGrid(scanner *bufio.Scanner) (*GeoidGrid, error) {
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	if !scanner.Scan() {
		return nil, errors.New("empty geoid grid file")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 6 {
		return nil, errors.Errorf("geoid grid header wants 6 fields, got %d", len(header))
	}
	nums := make([]float64, 6)
	for i, tok := range header {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "geoid grid header field %d", i)
		}
		nums[i] = v
	}
	g := &GeoidGrid{MinLatDeg: nums[0], MaxLatDeg: nums[1], MinLonDeg: nums[2], MaxLonDeg: nums[3], LatStepDeg: nums[4], LonStepDeg: nums[5]}
	g.Rows = int(math.Round((g.MaxLatDeg-g.MinLatDeg)/g.LatStepDeg)) + 1
	g.Cols = int(math.Round((g.MaxLonDeg-g.MinLonDeg)/g.LonStepDeg)) + 1

	values := make([]float64, 0, g.Rows*g.Cols)
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errors.Wrap(err, "geoid grid value")
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan geoid grid")
	}
	if len(values) != g.Rows*g.Cols {
		return nil, ctserr.New(ctserr.InvalidGridFile, "geoid grid expected %d values, got %d", g.Rows*g.Cols, len(values))
	}
	g.values = values
	return g, nil
}

// Interpolate returns the bilinearly-interpolated undulation N at
// (latDeg, lonDeg), or ok=false if the point falls outside the grid.
func (g *GeoidGrid) Interpolate(latDeg, lonDeg float64) (n float64, ok bool) {
	if latDeg < g.MinLatDeg || latDeg > g.MaxLatDeg || lonDeg < g.MinLonDeg || lonDeg > g.MaxLonDeg {
		return 0, false
	}
	// Row 0 is MaxLatDeg, rows increase as latitude decreases.
	rowF := (g.MaxLatDeg - latDeg) / g.LatStepDeg
	colF := (lonDeg - g.MinLonDeg) / g.LonStepDeg
	i0 := int(math.Floor(rowF))
	j0 := int(math.Floor(colF))
	if i0 >= g.Rows-1 {
		i0 = g.Rows - 2
	}
	if j0 >= g.Cols-1 {
		j0 = g.Cols - 2
	}
	if i0 < 0 {
		i0 = 0
	}
	if j0 < 0 {
		j0 = 0
	}
	x, y := colF-float64(j0), rowF-float64(i0)

	at := func(i, j int) float64 { return g.values[i*g.Cols+j] }
	a, b, c, d := at(i0, j0), at(i0, j0+1), at(i0+1, j0), at(i0+1, j0+1)
	return a + (b-a)*x + (c-a)*y + (a+d-b-c)*x*y, true
}

var (
	geoidGridsMu sync.Mutex
	geoidGrids   = map[string]*GeoidGrid{}
)

// LoadGeoidGridCached loads (or returns the previously loaded) geoid grid
// at path, single-flighted the same way LoadNTv2Cached is.
func LoadGeoidGridCached(path string) (*GeoidGrid, error) {
	geoidGridsMu.Lock()
	defer geoidGridsMu.Unlock()
	if g, ok := geoidGrids[path]; ok {
		return g, nil
	}
	g, err := LoadGeoidGrid(path)
	if err != nil {
		return nil, err
	}
	geoidGrids[path] = g
	return g, nil
}
