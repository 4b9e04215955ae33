package main

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lvchunk/chunkgrid"
	"github.com/katalvlaran/lvchunk/pmf"
)

// Biome is the dominant land type of a chunk.
type Biome int

const (
	Ocean Biome = iota
	Plains
	Forest
	Desert
	Mountain
)

var biomes = []Biome{Ocean, Plains, Forest, Desert, Mountain}

func (b Biome) String() string {
	switch b {
	case Ocean:
		return "ocean"
	case Plains:
		return "plains"
	case Forest:
		return "forest"
	case Desert:
		return "desert"
	case Mountain:
		return "mountain"
	}
	return "unknown"
}

// Glyph is the character used for b in biome maps.
func (b Biome) Glyph() byte {
	const glyphs = "~.\"_^"
	if b < 0 || int(b) >= len(glyphs) {
		return '?'
	}
	return glyphs[b]
}

// Terrain is the per-chunk payload, sampled once at the chunk's first seed.
type Terrain struct {
	Elevation float64
	Moisture  float64
	Biome     Biome
}

const (
	noiseFrequency   = 0.06
	noiseOctaves     = 4
	noisePersistence = 0.5
	seaLevel         = 0.35
	mountainLevel    = 0.7
	// biomeFloor keeps every biome drawable so the distribution never exhausts.
	biomeFloor = 0.02
)

// terrainGen samples layered noise and draws a biome per seed.
// Not safe for concurrent use.
type terrainGen struct {
	elev  opensimplex.Noise
	moist opensimplex.Noise
	rng   *rand.Rand
}

func newTerrainGen(seed int64) *terrainGen {
	return &terrainGen{
		elev:  opensimplex.NewNormalized(seed),
		moist: opensimplex.NewNormalized(seed + 1),
		rng:   rand.New(rand.NewSource(seed + 2)),
	}
}

// At is a voronoi.Factory for Terrain.
func (t *terrainGen) At(c chunkgrid.Coord) Terrain {
	x, y := float64(c.X), float64(c.Y)
	e := octaveNoise(t.elev, x, y, noiseOctaves, noiseFrequency, noisePersistence)
	m := octaveNoise(t.moist, x, y, noiseOctaves, noiseFrequency, noisePersistence)

	dist, err := pmf.FromFunc(biomes, func(b Biome) float64 { return affinity(b, e, m) })
	if err != nil {
		panic(err)
	}
	return Terrain{Elevation: e, Moisture: m, Biome: dist.MustNext(t.rng)}
}

// affinity weighs biome b for elevation e and moisture m, both in [0, 1).
func affinity(b Biome, e, m float64) float64 {
	w := biomeFloor
	switch b {
	case Ocean:
		if e < seaLevel {
			w += 1
		}
	case Mountain:
		if e >= mountainLevel {
			w += 1
		}
	case Plains:
		if e >= seaLevel && e < mountainLevel {
			w += 1 - abs(m-0.5)*2
		}
	case Forest:
		if e >= seaLevel && e < mountainLevel {
			w += m
		}
	case Desert:
		if e >= seaLevel && e < mountainLevel {
			w += 1 - m
		}
	}
	return w
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
