// Command ropebench builds, edits and searches a large rope while
// reporting timing and tree-shape diagnostics, using a policy loaded from
// an optional YAML config file.
package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/coreseekdev/gorope/pkg/ropeconfig"
	"github.com/coreseekdev/gorope/pkg/rope"
)

func main() {
	configPath := flag.String("config", "", "path to a ropeconfig YAML file (optional)")
	chunks := flag.Int("chunks", 20000, "number of chunks to append while building the rope")
	chunkSize := flag.Int("chunk-size", 48, "size in bytes of each appended chunk")
	needle := flag.String("search", "the quick brown fox", "substring to search for after building")
	flag.Parse()

	logger := log.New(os.Stdout, "ropebench: ", log.LstdFlags)

	pol := ropeconfig.Default()
	if *configPath != "" {
		loaded, err := ropeconfig.LoadFile(*configPath)
		if err != nil {
			logger.Fatalf("loading config %s: %v", *configPath, err)
		}
		pol = loaded
		logger.Printf("loaded policy from %s: %+v", *configPath, pol)
	}

	start := time.Now()
	b := rope.NewBuilderWithPolicy(pol.ToRope())
	chunk := strings.Repeat("x", *chunkSize)
	for i := 0; i < *chunks; i++ {
		b.WriteString(chunk)
		if i%997 == 0 {
			b.WriteString(*needle)
		}
	}
	r := b.Build()
	buildElapsed := time.Since(start)

	stats := r.Stats()
	logger.Printf("built %d-unit rope in %s", r.Len(), buildElapsed)
	logger.Printf("tree shape: depth=%d leaves=%d flats=%d substrings=%d concats=%d reverses=%d balanced=%v",
		stats.Depth, stats.LeafCount, stats.FlatCount, stats.SubstrCount, stats.ConcatCount, stats.ReverseCount, stats.WellBalanced)

	start = time.Now()
	idx, err := rope.IndexString(r, *needle, 0)
	searchElapsed := time.Since(start)
	if err != nil {
		logger.Fatalf("search failed: %v", err)
	}
	if idx < 0 {
		logger.Printf("search: %q not found in %s", *needle, searchElapsed)
	} else {
		logger.Printf("search: %q found at %d in %s", *needle, idx, searchElapsed)
	}

	start = time.Now()
	reversed := r.Reverse()
	reverseElapsed := time.Since(start)
	logger.Printf("reversed %d-unit rope in %s (len=%d)", r.Len(), reverseElapsed, reversed.Len())
}
