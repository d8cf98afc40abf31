// Package grid implements the binary/text grid readers backing
// component I's grid-based datum transformations: NTv2 (parent/child
// sub-grid tree, bilinear interpolation) and the text vertical geoid
// grid format, per spec.md §6.
package grid

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/geocts/ctsgo/ctserr"
)

// arcSecToRad converts NTv2's native arc-second units to radians.
const arcSecToRad = math.Pi / (180 * 3600)

// SubGrid is one node of the NTv2 parent/child tree: a rectangular area
// with a regular (lat, lon) sampling of shift nodes.
type SubGrid struct {
	Name, Parent                            string
	MinLat, MaxLat, MinLon, MaxLon          float64 // radians
	LatInterval, LonInterval                float64 // radians
	Rows, Cols                              int
	// nodes is row-major from MinLat to MaxLat (NTv2 files store south to
	// north internally once byte order is resolved), each holding
	// (lat_shift, lon_shift) in radians, already converted from the
	// on-disk arc-seconds.
	nodes    []latLonShift
	Children []*SubGrid
}

type latLonShift struct {
	dLat, dLon float64
}

// NTv2Grid is a loaded NTv2 grid file: a forest of
// top-level sub-grids, each possibly with children.
type NTv2Grid struct {
	Roots []*SubGrid
}

// endianSentinelThreshold bounds the legal little-endian decoding of the
// NUM_OREC record (a small record count); a value above it means the
// file is actually big-endian and must be re-read accordingly.
const endianSentinelThreshold = 1 << 20

// LoadNTv2 reads an entire NTv2 grid file into memory, per spec.md §5's
// preference for the in-memory mode over random-access file reads.
func LoadNTv2(path string) (*NTv2Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open ntv2 grid")
	}
	defer f.Close()
	return parseNTv2(bufio.NewReader(f))
}

type ntv2Record struct {
	tag  string
	raw  [8]byte
}

func readRecord(r io.Reader) (ntv2Record, error) {
	var rec ntv2Record
	var tag [8]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return rec, err
	}
	rec.tag = trimTag(tag[:])
	if _, err := io.ReadFull(r, rec.raw[:]); err != nil {
		return rec, err
	}
	return rec, nil
}

func trimTag(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == ' ' || b[end-1] == 0) {
		end--
	}
	return string(b[:end])
}

func (r ntv2Record) int32(order binary.ByteOrder) int32 {
	return int32(order.Uint32(r.raw[:4]))
}

func (r ntv2Record) float64(order binary.ByteOrder) float64 {
	bits := order.Uint64(r.raw[:8])
	return math.Float64frombits(bits)
}

// parseNTv2 implements the header-record walk described in spec.md §6:
// endianness is decided from the first record (NUM_OREC), then the overview
// header, then each sub-grid header (ending in GS_COUNT) followed by
// GS_COUNT node records of four float32s.
func parseNTv2(r *bufio.Reader) (*NTv2Grid, error) {
	peek, err := r.Peek(16)
	if err != nil {
		return nil, errors.Wrap(err, "ntv2 header too short")
	}
	order := binary.ByteOrder(binary.LittleEndian)
	if int32(binary.LittleEndian.Uint32(peek[8:12])) > endianSentinelThreshold ||
		int32(binary.LittleEndian.Uint32(peek[8:12])) < 0 {
		order = binary.BigEndian
	}

	numOrec, err := readRecord(r)
	if err != nil {
		return nil, errors.Wrap(err, "read NUM_OREC")
	}
	if numOrec.tag != "NUM_OREC" {
		return nil, ctserr.New(ctserr.InvalidGridFile, "expected NUM_OREC, got %q", numOrec.tag)
	}
	overviewRecords := int(numOrec.int32(order))

	numSrec, err := readRecord(r)
	if err != nil {
		return nil, errors.Wrap(err, "read NUM_SREC")
	}
	_ = numSrec

	numFile, err := readRecord(r)
	if err != nil {
		return nil, errors.Wrap(err, "read NUM_FILE")
	}
	numSubGrids := int(numFile.int32(order))

	// Skip the remaining overview-header records (GS_TYPE, VERSION,
	// SYSTEM_F, SYSTEM_T, MAJOR_F, MINOR_F, MAJOR_T, MINOR_T):
	// overviewRecords counts NUM_OREC itself, so three (NUM_OREC, NUM_SREC,
	// NUM_FILE) have already been consumed above.
	for i := 0; i < overviewRecords-3; i++ {
		if _, err := readRecord(r); err != nil {
			return nil, errors.Wrap(err, "read overview header")
		}
	}

	byName := make(map[string]*SubGrid, numSubGrids)
	var order2 []*SubGrid
	for i := 0; i < numSubGrids; i++ {
		sg, err := parseSubGridHeaderAndNodes(r, order)
		if err != nil {
			return nil, err
		}
		byName[sg.Name] = sg
		order2 = append(order2, sg)
	}

	var roots []*SubGrid
	for _, sg := range order2 {
		if sg.Parent == "" || sg.Parent == "NONE" {
			roots = append(roots, sg)
		} else if parent, ok := byName[sg.Parent]; ok {
			parent.Children = append(parent.Children, sg)
		} else {
			roots = append(roots, sg)
		}
	}
	return &NTv2Grid{Roots: roots}, nil
}

func parseSubGridHeaderAndNodes(r *bufio.Reader, order binary.ByteOrder) (*SubGrid, error) {
	sg := &SubGrid{}
	for {
		rec, err := readRecord(r)
		if err != nil {
			return nil, errors.Wrap(err, "read sub-grid header")
		}
		switch rec.tag {
		case "SUB_NAME":
			sg.Name = trimTag(rec.raw[:])
		case "PARENT":
			sg.Parent = trimTag(rec.raw[:])
		case "S_LAT":
			sg.MinLat = rec.float64(order) * arcSecToRad
		case "N_LAT":
			sg.MaxLat = rec.float64(order) * arcSecToRad
		case "E_LONG":
			// NTv2 longitudes are positive-west; negate to the engine's
			// positive-east convention.
			sg.MaxLon = -rec.float64(order) * arcSecToRad
		case "W_LONG":
			sg.MinLon = -rec.float64(order) * arcSecToRad
		case "LAT_INC":
			sg.LatInterval = rec.float64(order) * arcSecToRad
		case "LONG_INC":
			sg.LonInterval = rec.float64(order) * arcSecToRad
		case "GS_COUNT":
			count := int(rec.int32(order))
			sg.Rows = int(math.Round((sg.MaxLat-sg.MinLat)/sg.LatInterval)) + 1
			sg.Cols = int(math.Round((sg.MaxLon-sg.MinLon)/sg.LonInterval)) + 1
			if count != sg.Rows*sg.Cols {
				return nil, ctserr.New(ctserr.InvalidGridFile, "sub-grid %q declares %d nodes, header implies %d", sg.Name, count, sg.Rows*sg.Cols)
			}
			nodes, err := readNodes(r, order, count)
			if err != nil {
				return nil, err
			}
			sg.nodes = nodes
			return sg, nil
		}
	}
}

func readNodes(r *bufio.Reader, order binary.ByteOrder, count int) ([]latLonShift, error) {
	nodes := make([]latLonShift, count)
	var raw [16]byte
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, errors.Wrap(err, "read ntv2 node")
		}
		latShift := math.Float32frombits(order.Uint32(raw[0:4]))
		lonShift := math.Float32frombits(order.Uint32(raw[4:8]))
		nodes[i] = latLonShift{
			dLat: float64(latShift) * arcSecToRad,
			dLon: -float64(lonShift) * arcSecToRad, // stored positive-west
		}
	}
	return nodes, nil
}

// Lookup descends the parent/child tree to the deepest sub-grid whose
// extent brackets (lat, lon) (radians, inclusive on min, exclusive on max)
// and bilinearly interpolates the shift there, per spec.md §4.3/§6.
func (g *NTv2Grid) Lookup(lat, lon float64) (dLat, dLon float64, ok bool) {
	for _, root := range g.Roots {
		if sg, found := findDeepest(root, lat, lon); found {
			return sg.interpolate(lat, lon)
		}
	}
	return 0, 0, false
}

func findDeepest(sg *SubGrid, lat, lon float64) (*SubGrid, bool) {
	if !sg.contains(lat, lon) {
		return nil, false
	}
	for _, child := range sg.Children {
		if found, ok := findDeepest(child, lat, lon); ok {
			return found, true
		}
	}
	return sg, true
}

func (sg *SubGrid) contains(lat, lon float64) bool {
	return lat >= sg.MinLat && lat < sg.MaxLat && lon >= sg.MinLon && lon < sg.MaxLon
}

// interpolate implements the v(a,b,c,d,X,Y) formula from spec.md §4.3.
func (sg *SubGrid) interpolate(lat, lon float64) (dLat, dLon float64, ok bool) {
	col := (lon - sg.MinLon) / sg.LonInterval
	row := (lat - sg.MinLat) / sg.LatInterval
	i0, j0 := int(math.Floor(row)), int(math.Floor(col))
	x, y := col-float64(j0), row-float64(i0)
	if i0 < 0 || j0 < 0 || i0+1 >= sg.Rows || j0+1 >= sg.Cols {
		return 0, 0, false
	}

	idx := func(i, j int) int { return i*sg.Cols + j }
	a := sg.nodes[idx(i0, j0)]
	b := sg.nodes[idx(i0, j0+1)]
	c := sg.nodes[idx(i0+1, j0)]
	d := sg.nodes[idx(i0+1, j0+1)]

	interp := func(a, b, c, d float64) float64 {
		return a + (b-a)*x + (c-a)*y + (a+d-b-c)*x*y
	}
	return interp(a.dLat, b.dLat, c.dLat, d.dLat), interp(a.dLon, b.dLon, c.dLon, d.dLon), true
}

// fileGrids caches NTv2 grids loaded from disk, keyed by path, guarded by a
// single mutex per spec.md §5's per-file-locked random-access posture
// (here applied to the load itself, which is the only I/O this engine
// performs against the file).
var (
	fileGridsMu sync.Mutex
	fileGrids   = map[string]*NTv2Grid{}
)

// LoadNTv2Cached loads (or returns the previously loaded) grid at path,
// guarded by a package-level mutex so concurrent first-use callers do not
// race to open the same file.
func LoadNTv2Cached(path string) (*NTv2Grid, error) {
	fileGridsMu.Lock()
	defer fileGridsMu.Unlock()
	if g, ok := fileGrids[path]; ok {
		return g, nil
	}
	g, err := LoadNTv2(path)
	if err != nil {
		return nil, err
	}
	fileGrids[path] = g
	return g, nil
}
