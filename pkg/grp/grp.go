// Package grp provides reading functionality for Build engine GRP archives,
// the container most .map files ship in.
//
// A GRP file is a 16 byte header ("KenSilverman" plus a uint32 file count),
// a directory of 16 byte entries (12 byte name, uint32 size) and the file
// contents stored back to back in directory order.
package grp

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const grpMagic = "KenSilverman"

// GRP errors.
var (
	ErrInvalidMagic = errors.New("invalid GRP magic: expected 'KenSilverman'")
	ErrNotFound     = errors.New("file not found in archive")
)

// Entry is one file in the archive.
type Entry struct {
	Name   string
	Size   uint32
	Offset int64
}

type binEntry struct {
	Name [12]byte
	Size uint32
}

// Archive represents an opened GRP archive.
type Archive struct {
	file    *os.File
	entries []Entry
	index   map[string]int
}

// Open opens a GRP archive for reading.
func Open(path string) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}

	archive := &Archive{file: file, index: make(map[string]int)}
	if err := archive.readDirectory(); err != nil {
		file.Close()
		return nil, errors.Wrap(err, "reading directory")
	}

	return archive, nil
}

// Close closes the archive.
func (a *Archive) Close() error {
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}

func (a *Archive) readDirectory() error {
	var header struct {
		Magic     [12]byte
		FileCount uint32
	}
	if err := binary.Read(a.file, binary.LittleEndian, &header); err != nil {
		return errors.Wrap(err, "reading header")
	}
	if string(header.Magic[:]) != grpMagic {
		return ErrInvalidMagic
	}

	info, err := a.file.Stat()
	if err != nil {
		return err
	}
	if dirEnd := 16 + 16*int64(header.FileCount); dirEnd > info.Size() {
		return errors.Errorf("directory of %d entries exceeds file size %d", header.FileCount, info.Size())
	}

	dir := make([]binEntry, header.FileCount)
	if err := binary.Read(a.file, binary.LittleEndian, dir); err != nil {
		return errors.Wrapf(err, "reading %d entries", header.FileCount)
	}

	offset := int64(16 + 16*len(dir))
	a.entries = make([]Entry, 0, len(dir))
	for _, e := range dir {
		name := string(bytes.TrimRight(e.Name[:], "\x00"))
		a.index[normalizeName(name)] = len(a.entries)
		a.entries = append(a.entries, Entry{Name: name, Size: e.Size, Offset: offset})
		offset += int64(e.Size)
	}

	return nil
}

// Entries returns the archive directory in stored order.
func (a *Archive) Entries() []Entry {
	return a.entries
}

// List returns all file names in the archive.
func (a *Archive) List() []string {
	result := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		result = append(result, e.Name)
	}
	return result
}

// Contains checks if a file exists. Names are case-insensitive.
func (a *Archive) Contains(name string) bool {
	_, ok := a.index[normalizeName(name)]
	return ok
}

// OpenFile returns a reader over one file's contents.
func (a *Archive) OpenFile(name string) (*io.SectionReader, error) {
	i, ok := a.index[normalizeName(name)]
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	e := a.entries[i]
	return io.NewSectionReader(a.file, e.Offset, int64(e.Size)), nil
}

// Read reads a whole file from the archive.
func (a *Archive) Read(name string) ([]byte, error) {
	r, err := a.OpenFile(name)
	if err != nil {
		return nil, err
	}

	data := make([]byte, r.Size())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return data, nil
}

func normalizeName(name string) string {
	return strings.ToUpper(name)
}
