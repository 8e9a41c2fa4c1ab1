// Package board parses Build engine map files (.map) into sectors, walls
// and sprites.
//
// The layout is little-endian throughout:
//
//	Header                 20 bytes
//	uint16 sectorCount
//	Sector[sectorCount]    40 bytes each
//	int16  wallCount
//	Wall[wallCount]        32 bytes each
//	uint16 spriteCount
//	Sprite[spriteCount]    44 bytes each
//
// Anything after the last sprite is ignored.
package board

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Board errors.
var (
	ErrTruncatedInput  = errors.New("truncated map data")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Board is a fully parsed map.
type Board struct {
	Header  Header   `yaml:"header"`
	Sectors []Sector `yaml:"sectors"`
	Walls   []Wall   `yaml:"walls"`
	Sprites []Sprite `yaml:"sprites"`
}

// ReadBoard reads a complete board from r. It stops after the last sprite
// record. On error no board is returned.
func ReadBoard(r io.Reader) (*Board, error) {
	d := newDecoder(r)

	b := &Board{Header: d.header()}
	if d.err != nil {
		return nil, errors.Wrap(d.err, "reading header")
	}

	numSectors := get[uint16](d)
	if d.err != nil {
		return nil, errors.Wrap(d.err, "reading sector count")
	}
	b.Sectors = make([]Sector, 0, numSectors)
	for i := 0; i < int(numSectors); i++ {
		s := d.sector()
		if d.err != nil {
			return nil, errors.Wrapf(d.err, "reading sector %d", i)
		}
		b.Sectors = append(b.Sectors, s)
	}

	// The wall count is signed on disk. A negative count reads no walls.
	numWalls := get[int16](d)
	if d.err != nil {
		return nil, errors.Wrap(d.err, "reading wall count")
	}
	b.Walls = make([]Wall, 0, max(int(numWalls), 0))
	for i := 0; i < int(numWalls); i++ {
		w := d.wall()
		if d.err != nil {
			return nil, errors.Wrapf(d.err, "reading wall %d", i)
		}
		b.Walls = append(b.Walls, w)
	}

	numSprites := get[uint16](d)
	if d.err != nil {
		return nil, errors.Wrap(d.err, "reading sprite count")
	}
	b.Sprites = make([]Sprite, 0, numSprites)
	for i := 0; i < int(numSprites); i++ {
		s := d.sprite()
		if d.err != nil {
			return nil, errors.Wrapf(d.err, "reading sprite %d", i)
		}
		b.Sprites = append(b.Sprites, s)
	}

	return b, nil
}

// ParseBoard parses a board from raw bytes.
func ParseBoard(data []byte) (*Board, error) {
	return ReadBoard(bytes.NewReader(data))
}

// ParseBoardFile opens, parses and closes a map file.
func ParseBoardFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening map file")
	}
	defer f.Close()

	return ReadBoard(f)
}

// Counts holds the number of records of each kind in a board.
type Counts struct {
	Sectors int
	Walls   int
	Sprites int
}

// Stats returns the record counts.
func (b *Board) Stats() Counts {
	return Counts{Sectors: len(b.Sectors), Walls: len(b.Walls), Sprites: len(b.Sprites)}
}

// Size returns the number of bytes the board occupies on disk.
func (b *Board) Size() int {
	c := b.Stats()
	return HeaderSize +
		2 + SectorSize*c.Sectors +
		2 + WallSize*c.Walls +
		2 + SpriteSize*c.Sprites
}

// WallLength returns the length of the segment from wall i to its point2.
func (b *Board) WallLength(i int) (float64, error) {
	if i < 0 || i >= len(b.Walls) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "wall %d of %d", i, len(b.Walls))
	}
	w1 := &b.Walls[i]

	next := int(w1.Point2)
	if next >= len(b.Walls) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "point2 %d of wall %d", next, i)
	}
	w2 := &b.Walls[next]

	dx := float64(w1.X) - float64(w2.X)
	dy := float64(w1.Y) - float64(w2.Y)
	return math.Sqrt(dx*dx + dy*dy), nil
}

// SectorWalls returns the walls owned by sector i. The result aliases
// b.Walls.
func (b *Board) SectorWalls(i int) ([]Wall, error) {
	if i < 0 || i >= len(b.Sectors) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "sector %d of %d", i, len(b.Sectors))
	}
	s := &b.Sectors[i]

	start, end := int(s.WallPtr), int(s.WallPtr)+int(s.WallNum)
	if end > len(b.Walls) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "sector %d walls [%d,%d) of %d", i, start, end, len(b.Walls))
	}
	return b.Walls[start:end], nil
}

// StartSector returns the sector the player starts in.
func (b *Board) StartSector() (*Sector, error) {
	i := int(b.Header.CurSectNum)
	if i >= len(b.Sectors) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "start sector %d of %d", i, len(b.Sectors))
	}
	return &b.Sectors[i], nil
}
