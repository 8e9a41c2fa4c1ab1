//go:build ignore

// This program generates a small map for trying out maptool.
// Run with: go run generate.go
package main

import (
	"bytes"
	"encoding/binary"
	"os"
)

func main() {
	buf := new(bytes.Buffer)
	le := binary.LittleEndian

	// Header: version 7, start at the room centre facing east, sector 0.
	binary.Write(buf, le, uint32(7))
	binary.Write(buf, le, [3]int32{512, 512, 0})
	binary.Write(buf, le, uint16(0))
	binary.Write(buf, le, uint16(0))

	// One sector owning walls 0..3.
	binary.Write(buf, le, uint16(1))
	sector := make([]byte, 40)
	le.PutUint16(sector[0:], 0)                      // wallptr
	le.PutUint16(sector[2:], 4)                      // wallnum
	le.PutUint32(sector[4:], uint32(int32(-0x2000))) // ceilingz
	le.PutUint32(sector[8:], 0)                      // floorz
	le.PutUint16(sector[12:], 0x0001)                // ceilingstat: parallaxing
	buf.Write(sector)

	// A 1024x768 box, clockwise.
	corners := [][2]int32{{0, 0}, {1024, 0}, {1024, 768}, {0, 768}}
	binary.Write(buf, le, int16(len(corners)))
	for i, c := range corners {
		wall := make([]byte, 32)
		le.PutUint32(wall[0:], uint32(c[0]))
		le.PutUint32(wall[4:], uint32(c[1]))
		le.PutUint16(wall[8:], uint16((i+1)%len(corners))) // point2
		le.PutUint16(wall[10:], 0xFFFF)                   // nextwall
		le.PutUint16(wall[12:], 0xFFFF)                   // nextsector
		wall[22] = 8                                      // xrepeat
		wall[23] = 8                                      // yrepeat
		buf.Write(wall)
	}

	// One sprite in the middle of the room.
	binary.Write(buf, le, uint16(1))
	sprite := make([]byte, 44)
	le.PutUint32(sprite[0:], 512)
	le.PutUint32(sprite[4:], 384)
	le.PutUint16(sprite[12:], 0x0001) // cstat: blocking
	le.PutUint16(sprite[14:], 1405)   // picnum
	sprite[20] = 64                   // xrepeat
	sprite[21] = 64                   // yrepeat
	buf.Write(sprite)

	if err := os.WriteFile("sample.map", buf.Bytes(), 0644); err != nil {
		panic(err)
	}
}
