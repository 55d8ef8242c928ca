package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	rhodix "github.com/jewalky/Rhodix"
)

func main() {
	archivePath := flag.String("archive", "radix.dat", "resource archive to read levels from")
	levelName := flag.String("level", "WorldData[1][1]", "level resource name inside the archive")
	rawFile := flag.String("file", "", "decode a raw level resource from this file instead of the archive")
	list := flag.Bool("list", false, "list archive entries and exit")
	verbose := flag.Bool("v", false, "log decoder progress")
	dump := flag.Bool("dump", false, "print the polygon tree of every sector")
	flag.Parse()

	log.Println("Starting")

	// Set decoder logger
	if *verbose {
		rhodix.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}

	level, err := readLevel(*archivePath, *levelName, *rawFile, *list)
	if err != nil {
		log.Fatalln(err)
	}
	if level == nil {
		return
	}

	if *dump {
		rhodix.PrintSectorTree(os.Stdout, level)
		return
	}
	printSummary(level)
}

func readLevel(archivePath, levelName, rawFile string, list bool) (*rhodix.Level, error) {
	if rawFile != "" {
		buf, err := os.ReadFile(rawFile)
		if err != nil {
			return nil, err
		}
		return rhodix.ReadLevel(buf)
	}

	a, err := rhodix.OpenArchive(archivePath)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	if list {
		for i, e := range a.Entries() {
			fmt.Println("Entry:", i, e.Name, e.Offset, e.Size)
		}
		return nil, nil
	}
	return rhodix.LoadLevel(a, levelName)
}

func printSummary(level *rhodix.Level) {
	fmt.Printf("%d vertices, %d walls, %d sectors\n", len(level.Vertices), len(level.Walls), len(level.Sectors))
	open, empty := 0, 0
	for _, sec := range level.Sectors {
		var area float64
		for _, t := range sec.Triangles {
			for _, tri := range t.Triangles() {
				area += rhodix.LoopArea(tri[:])
			}
		}
		if !sec.Closed {
			open++
		}
		if len(sec.Walls) > 0 && len(sec.Triangles) == 0 {
			empty++
		}
		fmt.Printf("Sector: %d %q walls=%d loops=%d triangles=%d area=%g floor=%g ceiling=%g\n",
			sec.Index, sec.Tag, len(sec.Walls), sec.Loops, len(sec.Triangles), area, sec.Floor.Z, sec.Ceiling.Z)
	}
	fmt.Printf("%d sectors open, %d sectors without triangles\n", open, empty)
}
