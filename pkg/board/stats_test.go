package board

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSectorStats_Parallaxing(t *testing.T) {
	s := SectorStats(0b0000000000000011)

	if got := s.Parallaxing(); got != 3 {
		t.Errorf("Parallaxing() = %d, expected 3", got)
	}
	// bit 1 is shared with the next range
	if got := s.Slopped(); got != 1 {
		t.Errorf("Slopped() = %d, expected 1", got)
	}
	if got := s.Swap(); got != 0 {
		t.Errorf("Swap() = %d, expected 0", got)
	}
}

func TestBitRange_Width(t *testing.T) {
	tests := []struct {
		name string
		r    BitRange
		want uint8
	}{
		{"sector parallaxing", SectorParallaxing, 2},
		{"sector unk", SectorUnk, 9},
		{"wall unk", WallUnk, 6},
		{"sprite unk", SpriteUnk, 5},
		{"sprite invisible", SpriteInvisible, 2},
		{"whole word", BitRange{0, 15}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Width(); got != tt.want {
				t.Errorf("Width() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		name string
		got  uint16
		want uint16
	}{
		{"sector unk", SectorStats(0xFF80).Unk(), 0x1FF},
		{"sector align", SectorStats(0x00C0).Align(), 3},
		{"sector yflip", SectorStats(0x0040).YFlip(), 2},
		{"wall unk", WallStats(0xFC00).Unk(), 0x3F},
		{"wall translucent", WallStats(0x0080).Translucent(), 1},
		{"wall yflip", WallStats(0x0080).YFlip(), 0},
		{"wall translucent reversed", WallStats(0x0200).TranslucentReversed(), 1},
		{"wall blocking", WallStats(0x0001).Blocking(), 1},
		{"sprite invisible", SpriteStats(0x8000).Invisible(), 2},
		{"sprite unk", SpriteStats(0x4000).Unk(), 0x10},
		{"sprite type", SpriteStats(0x0030).SpriteType(), 3},
		{"sprite noautoshading", SpriteStats(0x0200).NoAutoShading(), 1},
		{"sprite blocking2", SpriteStats(0x0080).Blocking2(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, expected %#x", tt.got, tt.want)
			}
		})
	}
}

func TestStats_Reconstruct(t *testing.T) {
	registers := []struct {
		name   string
		fields []NamedRange
	}{
		{"sector", SectorStatsFields},
		{"wall", WallStatsFields},
		{"sprite", SpriteStatsFields},
	}

	for _, reg := range registers {
		t.Run(reg.name, func(t *testing.T) {
			for v := 0; v <= 0xFFFF; v++ {
				word := uint16(v)
				var rebuilt uint16
				for _, f := range reg.fields {
					rebuilt |= f.Range.Insert(0, f.Range.Extract(word))
				}
				if rebuilt != word {
					t.Fatalf("%#04x rebuilt as %#04x", word, rebuilt)
				}
			}
		})
	}
}

func TestStats_With(t *testing.T) {
	s := SectorStats(0).With(SectorUnk, 0x1FF)
	if s != 0xFF80 {
		t.Errorf("expected 0xff80, got %#x", uint16(s))
	}

	// Values wider than the range are masked.
	w := WallStats(0).With(WallBlocking, 0xFF)
	if w != 0x0003 {
		t.Errorf("expected 0x3, got %#x", uint16(w))
	}

	sp := SpriteStats(0xFFFF).With(SpriteInvisible, 0)
	if sp != 0x3FFF {
		t.Errorf("expected 0x3fff, got %#x", uint16(sp))
	}
	if sp.Unk() != 0xF {
		t.Errorf("unk keeps its low bits, got %#x", sp.Unk())
	}
}

func TestReadStats(t *testing.T) {
	v, err := ReadStats(bytes.NewReader([]byte{0x34, 0x12, 0xFF}))
	if err != nil {
		t.Fatalf("ReadStats failed: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("expected 0x1234, got %#x", v)
	}
}

func TestStats_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Cstat WallStats `yaml:"cstat"`
	}{Cstat: 0x0401})
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	text := string(out)
	for _, want := range []string{"raw: 1025", "blocking: 1", "unk: 1", "translucent_reversed: 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
	if strings.Index(text, "raw:") > strings.Index(text, "blocking:") {
		t.Errorf("raw should come first:\n%s", text)
	}
}

func TestBoard_MarshalYAML(t *testing.T) {
	b := &Board{
		Header:  testHeader(),
		Sectors: []Sector{testSector()},
		Walls:   []Wall{testWall(0, 0, 0)},
	}

	out, err := yaml.Marshal(b)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	text := string(out)
	for _, want := range []string{"cursectnum: 1", "wallnum: 3", "parallaxing: 1", "nextwall: -1", "sprites: []"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}
