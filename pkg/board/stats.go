package board

import "io"

// BitRange is an inclusive range of bit positions inside a 16-bit attribute
// register, bit 0 being the least significant.
type BitRange struct {
	Lo, Hi uint8
}

// Width returns the number of bits covered by the range.
func (r BitRange) Width() uint8 {
	return r.Hi - r.Lo + 1
}

func (r BitRange) mask() uint32 {
	return (uint32(1) << r.Width()) - 1
}

// Extract returns the sub-field of word covered by the range.
func (r BitRange) Extract(word uint16) uint16 {
	return uint16((uint32(word) >> r.Lo) & r.mask())
}

// Insert returns word with the range replaced by the low bits of v.
func (r BitRange) Insert(word, v uint16) uint16 {
	m := r.mask() << r.Lo
	return uint16((uint32(word) &^ m) | ((uint32(v) << r.Lo) & m))
}

// NamedRange pairs a field name with its bit range.
type NamedRange struct {
	Name  string
	Range BitRange
}

// Sector attribute ranges. Neighbouring ranges share their boundary bit,
// which is how the format defines them.
var (
	SectorParallaxing = BitRange{0, 1}
	SectorSlopped     = BitRange{1, 2}
	SectorSwap        = BitRange{2, 3}
	SectorDouble      = BitRange{3, 4}
	SectorXFlip       = BitRange{4, 5}
	SectorYFlip       = BitRange{5, 6}
	SectorAlign       = BitRange{6, 7}
	SectorUnk         = BitRange{7, 15}
)

// SectorStatsFields lists the sector ranges in bit order.
var SectorStatsFields = []NamedRange{
	{"parallaxing", SectorParallaxing},
	{"slopped", SectorSlopped},
	{"swap", SectorSwap},
	{"double", SectorDouble},
	{"xflip", SectorXFlip},
	{"yflip", SectorYFlip},
	{"align", SectorAlign},
	{"unk", SectorUnk},
}

// SectorStats is the ceiling or floor attribute register of a sector.
type SectorStats uint16

func (s SectorStats) Parallaxing() uint16 { return SectorParallaxing.Extract(uint16(s)) }
func (s SectorStats) Slopped() uint16 { return SectorSlopped.Extract(uint16(s)) }
func (s SectorStats) Swap() uint16 { return SectorSwap.Extract(uint16(s)) }
func (s SectorStats) Double() uint16 { return SectorDouble.Extract(uint16(s)) }
func (s SectorStats) XFlip() uint16 { return SectorXFlip.Extract(uint16(s)) }
func (s SectorStats) YFlip() uint16 { return SectorYFlip.Extract(uint16(s)) }
func (s SectorStats) Align() uint16 { return SectorAlign.Extract(uint16(s)) }
func (s SectorStats) Unk() uint16 { return SectorUnk.Extract(uint16(s)) }

// With returns a copy of s with range r set to v.
func (s SectorStats) With(r BitRange, v uint16) SectorStats {
	return SectorStats(r.Insert(uint16(s), v))
}

// Wall attribute ranges.
var (
	WallBlocking            = BitRange{0, 1}
	WallSwap                = BitRange{1, 2}
	WallAlign               = BitRange{2, 3}
	WallXFlip               = BitRange{3, 4}
	WallMasking             = BitRange{4, 5}
	WallOne                 = BitRange{5, 6}
	WallBlocking2           = BitRange{6, 7}
	WallTranslucent         = BitRange{7, 8}
	WallYFlip               = BitRange{8, 9}
	WallTranslucentReversed = BitRange{9, 10}
	WallUnk                 = BitRange{10, 15}
)

// WallStatsFields lists the wall ranges in bit order.
var WallStatsFields = []NamedRange{
	{"blocking", WallBlocking},
	{"swap", WallSwap},
	{"align", WallAlign},
	{"xflip", WallXFlip},
	{"masking", WallMasking},
	{"one", WallOne},
	{"blocking2", WallBlocking2},
	{"translucent", WallTranslucent},
	{"yflip", WallYFlip},
	{"translucent_reversed", WallTranslucentReversed},
	{"unk", WallUnk},
}

// WallStats is the attribute register of a wall (cstat).
type WallStats uint16

func (w WallStats) Blocking() uint16 { return WallBlocking.Extract(uint16(w)) }
func (w WallStats) Swap() uint16 { return WallSwap.Extract(uint16(w)) }
func (w WallStats) Align() uint16 { return WallAlign.Extract(uint16(w)) }
func (w WallStats) XFlip() uint16 { return WallXFlip.Extract(uint16(w)) }
func (w WallStats) Masking() uint16 { return WallMasking.Extract(uint16(w)) }
func (w WallStats) One() uint16 { return WallOne.Extract(uint16(w)) }
func (w WallStats) Blocking2() uint16 { return WallBlocking2.Extract(uint16(w)) }
func (w WallStats) Translucent() uint16 { return WallTranslucent.Extract(uint16(w)) }
func (w WallStats) YFlip() uint16 { return WallYFlip.Extract(uint16(w)) }
func (w WallStats) TranslucentReversed() uint16 { return WallTranslucentReversed.Extract(uint16(w)) }
func (w WallStats) Unk() uint16 { return WallUnk.Extract(uint16(w)) }

// With returns a copy of w with range r set to v.
func (w WallStats) With(r BitRange, v uint16) WallStats {
	return WallStats(r.Insert(uint16(w), v))
}

// Sprite attribute ranges.
var (
	SpriteBlocking           = BitRange{0, 1}
	SpriteTranslucent        = BitRange{1, 2}
	SpriteXFlip              = BitRange{2, 3}
	SpriteYFlip              = BitRange{3, 4}
	SpriteType               = BitRange{4, 5}
	SpriteOneSided           = BitRange{5, 6}
	SpriteRealCenter         = BitRange{6, 7}
	SpriteBlocking2          = BitRange{7, 8}
	SpriteReverseTranslucent = BitRange{8, 9}
	SpriteNoAutoShading      = BitRange{9, 10}
	SpriteUnk                = BitRange{10, 14}
	SpriteInvisible          = BitRange{14, 15}
)

// SpriteStatsFields lists the sprite ranges in bit order.
var SpriteStatsFields = []NamedRange{
	{"blocking", SpriteBlocking},
	{"translucent", SpriteTranslucent},
	{"xflip", SpriteXFlip},
	{"yflip", SpriteYFlip},
	{"sprite_type", SpriteType},
	{"onesided", SpriteOneSided},
	{"real_center", SpriteRealCenter},
	{"blocking2", SpriteBlocking2},
	{"reverse_translucent", SpriteReverseTranslucent},
	{"noautoshading", SpriteNoAutoShading},
	{"unk", SpriteUnk},
	{"invisible", SpriteInvisible},
}

// SpriteStats is the attribute register of a sprite (cstat).
type SpriteStats uint16

func (s SpriteStats) Blocking() uint16 { return SpriteBlocking.Extract(uint16(s)) }
func (s SpriteStats) Translucent() uint16 { return SpriteTranslucent.Extract(uint16(s)) }
func (s SpriteStats) XFlip() uint16 { return SpriteXFlip.Extract(uint16(s)) }
func (s SpriteStats) YFlip() uint16 { return SpriteYFlip.Extract(uint16(s)) }
func (s SpriteStats) SpriteType() uint16 { return SpriteType.Extract(uint16(s)) }
func (s SpriteStats) OneSided() uint16 { return SpriteOneSided.Extract(uint16(s)) }
func (s SpriteStats) RealCenter() uint16 { return SpriteRealCenter.Extract(uint16(s)) }
func (s SpriteStats) Blocking2() uint16 { return SpriteBlocking2.Extract(uint16(s)) }
func (s SpriteStats) ReverseTranslucent() uint16 { return SpriteReverseTranslucent.Extract(uint16(s)) }
func (s SpriteStats) NoAutoShading() uint16 { return SpriteNoAutoShading.Extract(uint16(s)) }
func (s SpriteStats) Unk() uint16 { return SpriteUnk.Extract(uint16(s)) }
func (s SpriteStats) Invisible() uint16 { return SpriteInvisible.Extract(uint16(s)) }

// With returns a copy of s with range r set to v.
func (s SpriteStats) With(r BitRange, v uint16) SpriteStats {
	return SpriteStats(r.Insert(uint16(s), v))
}

// ReadStats reads one attribute register word.
func ReadStats(r io.Reader) (uint16, error) {
	d := newDecoder(r)
	v := get[uint16](d)
	return v, d.err
}
