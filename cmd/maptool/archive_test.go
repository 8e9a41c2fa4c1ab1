package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitArchivePath(t *testing.T) {
	tests := []struct {
		in      string
		archive string
		member  string
	}{
		{"E1L1.MAP", "E1L1.MAP", ""},
		{"DUKE3D.GRP:E1L1.MAP", "DUKE3D.GRP", "E1L1.MAP"},
		{"data/duke3d.grp:e2l3.map", "data/duke3d.grp", "e2l3.map"},
		{`C:\maps\E1L1.MAP`, `C:\maps\E1L1.MAP`, ""},
	}

	for _, tt := range tests {
		archive, member := splitArchivePath(tt.in)
		if archive != tt.archive || member != tt.member {
			t.Errorf("splitArchivePath(%q) = %q, %q, expected %q, %q", tt.in, archive, member, tt.archive, tt.member)
		}
	}
}

func TestLoadBoard_FromArchive(t *testing.T) {
	// Header, then zero sectors, walls and sprites.
	mapData := make([]byte, 20+2+2+2)
	binary.LittleEndian.PutUint32(mapData[0:], 7)

	buf := new(bytes.Buffer)
	buf.WriteString("KenSilverman")
	binary.Write(buf, binary.LittleEndian, uint32(1))
	var name [12]byte
	copy(name[:], "TEST.MAP")
	buf.Write(name[:])
	binary.Write(buf, binary.LittleEndian, uint32(len(mapData)))
	buf.Write(mapData)

	path := filepath.Join(t.TempDir(), "test.grp")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write test GRP: %v", err)
	}

	b, err := loadBoard(path + ":test.map")
	if err != nil {
		t.Fatalf("loadBoard failed: %v", err)
	}
	if b.Header.Version != 7 {
		t.Errorf("expected version 7, got %d", b.Header.Version)
	}

	if _, err := loadBoard(path + ":MISSING.MAP"); err == nil {
		t.Error("expected error for missing member")
	}
}
