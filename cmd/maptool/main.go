// maptool is a CLI utility for inspecting Build engine map files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/buildmap/internal/config"
	"github.com/Faultbox/buildmap/internal/logger"
	"github.com/Faultbox/buildmap/pkg/board"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "sectors":
		cmdSectors(args)
	case "walls":
		cmdWalls(args)
	case "sprites":
		cmdSprites(args)
	case "walllen", "len":
		cmdWallLen(args)
	case "dump":
		cmdDump(args)
	case "maps":
		cmdMaps(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`maptool - Build engine map file utility

Usage:
  maptool <command> [options]

Commands:
  info <file.map>                Show header and record counts
  sectors [-n N] <file.map>      List sectors
  walls [-n N] <file.map>        List walls
  sprites [-n N] <file.map>      List sprites
  walllen <file.map> [index]     Length of a wall segment
                                 (index defaults to output.wall_index)
  dump <file.map>                Print the whole board as YAML
  maps <file.grp>                List maps stored in a GRP archive
  config [path]                  Write the default config file

A map inside a GRP archive is named <file.grp>:<MAP>, e.g. DUKE3D.GRP:E1L1.MAP.

Options (all commands):
  -config <path>   Config file (default ./maptool.yaml)
  -debug           Enable debug logging
  -format <fmt>    Listing format: text or yaml
  -stats           Expand attribute registers in listings

Examples:
  maptool info E1L1.MAP
  maptool walls -n 20 -stats E1L1.MAP
  maptool walllen E1L1.MAP 554
  maptool info DUKE3D.GRP:E1L1.MAP`)
}

// setup parses the command flags, loads config and starts logging.
func setup(name string, args []string) (*config.Config, *flag.FlagSet) {
	var flags config.Flags
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags.Register(fs)
	fs.Parse(args)

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	logger.Debug("config loaded", zap.String("command", name), zap.String("format", cfg.Output.Format))
	return cfg, fs
}

// openBoard parses the map named by the first positional argument.
func openBoard(fs *flag.FlagSet, usage string) *board.Board {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: maptool "+usage)
		os.Exit(1)
	}
	path := fs.Arg(0)

	start := time.Now()
	b, err := loadBoard(path)
	if err != nil {
		logger.Error("parse failed", zap.String("path", path), zap.Error(err))
		fail(err)
	}

	c := b.Stats()
	logger.Info("parsed map",
		zap.String("path", path),
		zap.Int("sectors", c.Sectors),
		zap.Int("walls", c.Walls),
		zap.Int("sprites", c.Sprites),
		zap.Duration("took", time.Since(start)))
	return b
}

func fail(err error) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	_, fs := setup("info", args)
	defer logger.Sync()
	b := openBoard(fs, "info <file.map>")

	h := b.Header
	fmt.Printf("Map:      %s\n", fs.Arg(0))
	fmt.Printf("Version:  %d\n", h.Version)
	fmt.Printf("Start:    (%d, %d, %d) angle %d sector %d\n", h.PosX, h.PosY, h.PosZ, h.Angle, h.CurSectNum)
	c := b.Stats()
	fmt.Printf("Sectors:  %d\n", c.Sectors)
	fmt.Printf("Walls:    %d\n", c.Walls)
	fmt.Printf("Sprites:  %d\n", c.Sprites)
	fmt.Printf("Size:     %d bytes\n", b.Size())

	if _, err := b.StartSector(); err != nil {
		fmt.Printf("Warning:  %v\n", err)
	}
}

func cmdSectors(args []string) {
	cfg, fs := setup("sectors", args)
	defer logger.Sync()
	b := openBoard(fs, "sectors [-n N] <file.map>")

	sectors := limit(b.Sectors, cfg.Output.Limit)
	if cfg.Output.Format == config.FormatYAML {
		printYAML(sectors)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tWALLS\tCEILZ\tFLOORZ\tCPIC\tFPIC\tCSTAT\tFSTAT\tLOTAG\tHITAG")
	for i, s := range sectors {
		fmt.Fprintf(w, "%d\t%d+%d\t%d\t%d\t%d\t%d\t%s\t%s\t%d\t%d\n",
			i, s.WallPtr, s.WallNum, s.CeilingZ, s.FloorZ, s.CeilingPicnum, s.FloorPicnum,
			formatStats(uint16(s.CeilingStat), board.SectorStatsFields, cfg.Output.Stats),
			formatStats(uint16(s.FloorStat), board.SectorStatsFields, cfg.Output.Stats),
			s.LoTag, s.HiTag)
	}
	w.Flush()
}

func cmdWalls(args []string) {
	cfg, fs := setup("walls", args)
	defer logger.Sync()
	b := openBoard(fs, "walls [-n N] <file.map>")

	walls := limit(b.Walls, cfg.Output.Limit)
	if cfg.Output.Format == config.FormatYAML {
		printYAML(walls)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tX\tY\tPOINT2\tNEXTWALL\tNEXTSECT\tLENGTH\tPIC\tCSTAT")
	for i, wall := range walls {
		length := "-"
		if l, err := b.WallLength(i); err == nil {
			length = strconv.FormatFloat(l, 'f', 2, 64)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%s\t%d\t%s\n",
			i, wall.X, wall.Y, wall.Point2, wall.NextWall, wall.NextSector, length, wall.Picnum,
			formatStats(uint16(wall.Cstat), board.WallStatsFields, cfg.Output.Stats))
	}
	w.Flush()
}

func cmdSprites(args []string) {
	cfg, fs := setup("sprites", args)
	defer logger.Sync()
	b := openBoard(fs, "sprites [-n N] <file.map>")

	sprites := limit(b.Sprites, cfg.Output.Limit)
	if cfg.Output.Format == config.FormatYAML {
		printYAML(sprites)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tX\tY\tZ\tPIC\tSECT\tSTAT\tANG\tLOTAG\tHITAG\tCSTAT")
	for i, s := range sprites {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			i, s.X, s.Y, s.Z, s.Picnum, s.SectNum, s.StatNum, s.Angle, s.LoTag, s.HiTag,
			formatStats(uint16(s.Cstat), board.SpriteStatsFields, cfg.Output.Stats))
	}
	w.Flush()
}

func cmdWallLen(args []string) {
	cfg, fs := setup("walllen", args)
	defer logger.Sync()

	index, err := wallIndex(fs.Args(), cfg.Output.WallIndex)
	if err != nil {
		fail(err)
	}

	b := openBoard(fs, "walllen <file.map> [index]")
	length, err := b.WallLength(index)
	if err != nil {
		fail(err)
	}
	fmt.Printf("wall %d length %g\n", index, length)
}

func cmdDump(args []string) {
	_, fs := setup("dump", args)
	defer logger.Sync()
	b := openBoard(fs, "dump <file.map>")
	printYAML(b)
}

func cmdConfig(args []string) {
	cfg, fs := setup("config", args)
	defer logger.Sync()

	var err error
	path := fs.Arg(0)
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "maptool.yaml")
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote config to %s\n", path)
}

// wallIndex returns the index given after the map path, or def when the
// argument is missing.
func wallIndex(args []string, def int) (int, error) {
	if len(args) < 2 {
		return def, nil
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, errors.Errorf("invalid wall index %q", args[1])
	}
	return index, nil
}

func limit[T any](records []T, n int) []T {
	if n > 0 && n < len(records) {
		return records[:n]
	}
	return records
}

func printYAML(v any) {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fail(err)
	}
	enc.Close()
}
