package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvchunk/chunkgrid"
	"github.com/katalvlaran/lvchunk/regiongraph"
	"github.com/katalvlaran/lvchunk/voronoi"
)

const (
	idGlyphs = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// maxASCIIWidth caps the character map so it fits a terminal.
	maxASCIIWidth = 160
)

// summary is the printable outcome of one run.
type summary struct {
	Width, Height         int
	Regions               int
	Rounds                int
	Recorded, Borders     int
	Unrecorded            int
	Largest, Smallest     int
	LargestID, SmallestID chunkgrid.RegionID
	Biomes                map[Biome]int
	Elapsed               time.Duration
}

func summarize(g *chunkgrid.Grid[Terrain], res *voronoi.Result, elapsed time.Duration) (summary, error) {
	sz := g.Size()
	s := summary{
		Width:    sz.Width,
		Height:   sz.Height,
		Regions:  res.Regions,
		Rounds:   len(res.Rounds),
		Recorded: res.Final.Edges,
		Biomes:   make(map[Biome]int),
		Elapsed:  elapsed,
		Smallest: -1,
	}
	for id, n := range g.Sizes() {
		if n > s.Largest {
			s.Largest, s.LargestID = n, chunkgrid.RegionID(id)
		}
		if s.Smallest < 0 || n < s.Smallest {
			s.Smallest, s.SmallestID = n, chunkgrid.RegionID(id)
		}
	}
	for _, r := range g.Regions().All() {
		s.Biomes[r.Data.Biome]++
	}

	recorded, err := regiongraph.FromGrid(g, regiongraph.Symmetric)
	if err != nil {
		return s, err
	}
	borders, err := regiongraph.FromBorders(g)
	if err != nil {
		return s, err
	}
	s.Borders = borders.EdgeCount()
	s.Unrecorded = len(recorded.Missing(borders))
	return s, nil
}

func (s summary) write(w io.Writer) {
	fmt.Fprintf(w, "grid      %d×%d (%s cells)\n", s.Width, s.Height, humanize.Comma(int64(s.Width*s.Height)))
	fmt.Fprintf(w, "regions   %s after %d relaxation rounds in %s\n", humanize.Comma(int64(s.Regions)), s.Rounds, s.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(w, "edges     %s recorded, %s border pairs, %d unrecorded\n",
		humanize.Comma(int64(s.Recorded)), humanize.Comma(int64(s.Borders)), s.Unrecorded)
	fmt.Fprintf(w, "largest   region %d with %s cells\n", s.LargestID, humanize.Comma(int64(s.Largest)))
	fmt.Fprintf(w, "smallest  region %d with %s cells\n", s.SmallestID, humanize.Comma(int64(s.Smallest)))
	for _, b := range biomes {
		if n := s.Biomes[b]; n > 0 {
			fmt.Fprintf(w, "%-9s %d (%s)\n", b, n, humanize.FormatFloat("#.#", 100*float64(n)/float64(s.Regions))+"%")
		}
	}
}

// writeASCII prints one glyph per cell: the region id for region maps or
// the region's biome when biomes is set.
func writeASCII(w io.Writer, g *chunkgrid.Grid[Terrain], biomes bool) error {
	sz := g.Size()
	if sz.Width > maxASCIIWidth {
		return fmt.Errorf("chunkmap: width %d exceeds ascii limit %d", sz.Width, maxASCIIWidth)
	}
	line := make([]byte, sz.Width+1)
	line[sz.Width] = '\n'
	for y := 0; y < sz.Height; y++ {
		for x := 0; x < sz.Width; x++ {
			r, err := g.RegionAt(g.Index(x, y))
			if err != nil {
				line[x] = ' '
				continue
			}
			if biomes {
				line[x] = r.Data.Biome.Glyph()
			} else {
				line[x] = idGlyphs[int(r.ID())%len(idGlyphs)]
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
