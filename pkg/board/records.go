package board

import "io"

// Fixed record sizes in bytes.
const (
	HeaderSize = 20
	SectorSize = 40
	WallSize   = 32
	SpriteSize = 44
)

// Header holds the map version and the player start.
type Header struct {
	Version    uint32 `yaml:"version"`
	PosX       int32  `yaml:"posx"`
	PosY       int32  `yaml:"posy"`
	PosZ       int32  `yaml:"posz"`
	Angle      uint16 `yaml:"ang"`
	CurSectNum uint16 `yaml:"cursectnum"`
}

// Sector is a region bounded by the walls [WallPtr, WallPtr+WallNum).
type Sector struct {
	WallPtr uint16 `yaml:"wallptr"`
	WallNum uint16 `yaml:"wallnum"`

	CeilingZ    int32       `yaml:"ceilingz"`
	FloorZ      int32       `yaml:"floorz"`
	CeilingStat SectorStats `yaml:"ceilingstat"`
	FloorStat   SectorStats `yaml:"floorstat"`

	CeilingPicnum   uint16 `yaml:"ceilingpicnum"`
	CeilingHeinum   int16  `yaml:"ceilingheinum"` // slope
	CeilingShade    int8   `yaml:"ceilingshade"`
	CeilingPal      uint8  `yaml:"ceilingpal"`
	CeilingXPanning uint8  `yaml:"ceilingxpanning"`
	CeilingYPanning uint8  `yaml:"ceilingypanning"`

	FloorPicnum   uint16 `yaml:"floorpicnum"`
	FloorHeinum   int16  `yaml:"floorheinum"`
	FloorShade    int8   `yaml:"floorshade"`
	FloorPal      uint8  `yaml:"floorpal"`
	FloorXPanning uint8  `yaml:"floorxpanning"`
	FloorYPanning uint8  `yaml:"floorypanning"`

	Visibility int8   `yaml:"visibility"`
	Filler     int8   `yaml:"filler"`
	LoTag      uint16 `yaml:"lotag"`
	HiTag      uint16 `yaml:"hitag"`
	Extra      uint16 `yaml:"extra"`
}

// Wall is one directed edge of a sector outline. Point2 is the next wall of
// the loop; NextWall and NextSector are -1 unless the wall is a portal.
type Wall struct {
	X          int32     `yaml:"x"`
	Y          int32     `yaml:"y"`
	Point2     uint16    `yaml:"point2"`
	NextWall   int16     `yaml:"nextwall"`
	NextSector int16     `yaml:"nextsector"`
	Cstat      WallStats `yaml:"cstat"`
	Picnum     uint16    `yaml:"picnum"`
	OverPicnum uint16    `yaml:"overpicnum"`
	Shade      int8      `yaml:"shade"`
	Pal        uint8     `yaml:"pal"`
	XRepeat    uint8     `yaml:"xrepeat"`
	YRepeat    uint8     `yaml:"yrepeat"`
	XPanning   uint8     `yaml:"xpanning"`
	YPanning   uint8     `yaml:"ypanning"`
	LoTag      uint16    `yaml:"lotag"`
	HiTag      uint16    `yaml:"hitag"`
	Extra      uint16    `yaml:"extra"`
}

// IsPortal reports whether the wall adjoins another sector.
func (w *Wall) IsPortal() bool {
	return w.NextSector >= 0
}

// Sprite is an entity or decoration placed in a sector.
type Sprite struct {
	X        int32       `yaml:"x"`
	Y        int32       `yaml:"y"`
	Z        int32       `yaml:"z"`
	Cstat    SpriteStats `yaml:"cstat"`
	Picnum   uint16      `yaml:"picnum"`
	Shade    int8        `yaml:"shade"`
	Pal      uint8       `yaml:"pal"`
	ClipDist uint8       `yaml:"clipdist"`
	Filler   uint8       `yaml:"filler"`
	XRepeat  uint8       `yaml:"xrepeat"`
	YRepeat  uint8       `yaml:"yrepeat"`
	XOffset  uint8       `yaml:"xoffset"`
	YOffset  uint8       `yaml:"yoffset"`
	SectNum  uint16      `yaml:"sectnum"`
	StatNum  uint16      `yaml:"statnum"`
	Angle    uint16      `yaml:"ang"`
	Owner    uint16      `yaml:"owner"`
	XVel     int16       `yaml:"xvel"`
	YVel     int16       `yaml:"yvel"`
	ZVel     int16       `yaml:"zvel"`
	LoTag    uint16      `yaml:"lotag"`
	HiTag    uint16      `yaml:"hitag"`
	Extra    uint16      `yaml:"extra"`
}

// ReadHeader reads a 20 byte header.
func ReadHeader(r io.Reader) (Header, error) {
	d := newDecoder(r)
	h := d.header()
	if d.err != nil {
		return Header{}, d.err
	}
	return h, nil
}

// ReadSector reads a 40 byte sector record.
func ReadSector(r io.Reader) (Sector, error) {
	d := newDecoder(r)
	s := d.sector()
	if d.err != nil {
		return Sector{}, d.err
	}
	return s, nil
}

// ReadWall reads a 32 byte wall record.
func ReadWall(r io.Reader) (Wall, error) {
	d := newDecoder(r)
	w := d.wall()
	if d.err != nil {
		return Wall{}, d.err
	}
	return w, nil
}

// ReadSprite reads a 44 byte sprite record.
func ReadSprite(r io.Reader) (Sprite, error) {
	d := newDecoder(r)
	s := d.sprite()
	if d.err != nil {
		return Sprite{}, d.err
	}
	return s, nil
}

// Composite literal fields are evaluated in source order, which is the
// order they are laid out on disk.

func (d *decoder) header() Header {
	return Header{
		Version:    get[uint32](d),
		PosX:       get[int32](d),
		PosY:       get[int32](d),
		PosZ:       get[int32](d),
		Angle:      get[uint16](d),
		CurSectNum: get[uint16](d),
	}
}

func (d *decoder) sector() Sector {
	return Sector{
		WallPtr:         get[uint16](d),
		WallNum:         get[uint16](d),
		CeilingZ:        get[int32](d),
		FloorZ:          get[int32](d),
		CeilingStat:     get[SectorStats](d),
		FloorStat:       get[SectorStats](d),
		CeilingPicnum:   get[uint16](d),
		CeilingHeinum:   get[int16](d),
		CeilingShade:    get[int8](d),
		CeilingPal:      get[uint8](d),
		CeilingXPanning: get[uint8](d),
		CeilingYPanning: get[uint8](d),
		FloorPicnum:     get[uint16](d),
		FloorHeinum:     get[int16](d),
		FloorShade:      get[int8](d),
		FloorPal:        get[uint8](d),
		FloorXPanning:   get[uint8](d),
		FloorYPanning:   get[uint8](d),
		Visibility:      get[int8](d),
		Filler:          get[int8](d),
		LoTag:           get[uint16](d),
		HiTag:           get[uint16](d),
		Extra:           get[uint16](d),
	}
}

func (d *decoder) wall() Wall {
	return Wall{
		X:          get[int32](d),
		Y:          get[int32](d),
		Point2:     get[uint16](d),
		NextWall:   get[int16](d),
		NextSector: get[int16](d),
		Cstat:      get[WallStats](d),
		Picnum:     get[uint16](d),
		OverPicnum: get[uint16](d),
		Shade:      get[int8](d),
		Pal:        get[uint8](d),
		XRepeat:    get[uint8](d),
		YRepeat:    get[uint8](d),
		XPanning:   get[uint8](d),
		YPanning:   get[uint8](d),
		LoTag:      get[uint16](d),
		HiTag:      get[uint16](d),
		Extra:      get[uint16](d),
	}
}

func (d *decoder) sprite() Sprite {
	return Sprite{
		X:        get[int32](d),
		Y:        get[int32](d),
		Z:        get[int32](d),
		Cstat:    get[SpriteStats](d),
		Picnum:   get[uint16](d),
		Shade:    get[int8](d),
		Pal:      get[uint8](d),
		ClipDist: get[uint8](d),
		Filler:   get[uint8](d),
		XRepeat:  get[uint8](d),
		YRepeat:  get[uint8](d),
		XOffset:  get[uint8](d),
		YOffset:  get[uint8](d),
		SectNum:  get[uint16](d),
		StatNum:  get[uint16](d),
		Angle:    get[uint16](d),
		Owner:    get[uint16](d),
		XVel:     get[int16](d),
		YVel:     get[int16](d),
		ZVel:     get[int16](d),
		LoTag:    get[uint16](d),
		HiTag:    get[uint16](d),
		Extra:    get[uint16](d),
	}
}
