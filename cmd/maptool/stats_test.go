package main

import (
	"testing"

	"github.com/Faultbox/buildmap/pkg/board"
)

func TestFormatStats(t *testing.T) {
	tests := []struct {
		name   string
		word   uint16
		fields []board.NamedRange
		expand bool
		want   string
	}{
		{"hex", 0x0011, board.WallStatsFields, false, "0x0011"},
		{"expanded", 0x0011, board.WallStatsFields, true, "blocking=1,xflip=2,masking=1"},
		{"empty", 0, board.SpriteStatsFields, true, "-"},
		{"sector parallax", 3, board.SectorStatsFields, true, "parallaxing=3,slopped=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStats(tt.word, tt.fields, tt.expand); got != tt.want {
				t.Errorf("formatStats(%#x) = %q, expected %q", tt.word, got, tt.want)
			}
		})
	}
}
