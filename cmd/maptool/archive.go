package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/buildmap/internal/logger"
	"github.com/Faultbox/buildmap/pkg/board"
	"github.com/Faultbox/buildmap/pkg/grp"
)

// splitArchivePath splits "DUKE3D.GRP:E1L1.MAP" into archive and member.
// Plain paths return an empty member.
func splitArchivePath(path string) (archive, member string) {
	i := strings.LastIndex(path, ":")
	if i <= 0 || !strings.EqualFold(filepath.Ext(path[:i]), ".grp") {
		return path, ""
	}
	return path[:i], path[i+1:]
}

// loadBoard parses a map from disk or from inside a GRP archive.
func loadBoard(path string) (*board.Board, error) {
	archivePath, member := splitArchivePath(path)
	if member == "" {
		return board.ParseBoardFile(path)
	}

	archive, err := grp.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	r, err := archive.OpenFile(member)
	if err != nil {
		return nil, err
	}
	logger.Debug("reading map from archive", zap.String("archive", archivePath), zap.String("map", member), zap.Int64("size", r.Size()))
	return board.ReadBoard(r)
}

func cmdMaps(args []string) {
	_, fs := setup("maps", args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: maptool maps <file.grp>")
		os.Exit(1)
	}

	archive, err := grp.Open(fs.Arg(0))
	if err != nil {
		fail(err)
	}
	defer archive.Close()

	count := 0
	for _, e := range archive.Entries() {
		if !strings.EqualFold(filepath.Ext(e.Name), ".map") {
			continue
		}
		fmt.Printf("%-12s %8d\n", e.Name, e.Size)
		count++
	}
	fmt.Fprintf(os.Stderr, "\n(%d maps of %d files)\n", count, len(archive.Entries()))
}
