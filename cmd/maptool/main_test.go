package main

import "testing"

func TestWallIndex(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		def     int
		want    int
		wantErr bool
	}{
		{"explicit index", []string{"E1L1.MAP", "554"}, 0, 554, false},
		{"falls back to config", []string{"E1L1.MAP"}, 12, 12, false},
		{"explicit wins over config", []string{"E1L1.MAP", "3"}, 12, 3, false},
		{"not a number", []string{"E1L1.MAP", "abc"}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wallIndex(tt.args, tt.def)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("wallIndex(%v, %d) = %d, expected %d", tt.args, tt.def, got, tt.want)
			}
		})
	}
}
