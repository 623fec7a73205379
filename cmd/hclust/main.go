// Command hclust builds a dendrogram from a pairwise distance table and
// prints either the merge sequence or a flat clustering.
//
// Usage:
//
//	hclust [flags] [file]
//
// The input is a tab-delimited distance table, lower-triangular by default
// or full symmetric with -full, read from the named file ("-" or no
// argument reads standard input). Files ending in .gz, .zst or .lz4 are
// decompressed transparently. Without -cut or -n the merge sequence is
// printed, one internal node per line; -cut H prints the groups obtained
// by cutting the dendrogram at height H, and -n K the groups obtained by
// stopping at K clusters. Results go to standard output, diagnostics to
// standard error.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mstrosaker/hclust"
)

func main() {
	var (
		full    = flag.Bool("full", false, "input is a full symmetric matrix instead of lower-triangular")
		linkage = flag.String("linkage", "average", "linkage criterion: average, max or min")
		cutAt   = flag.Float64("cut", 0, "cut the dendrogram at this height and print the groups")
		count   = flag.Int("n", 0, "stop at this many clusters and print the groups")
		asJSON  = flag.Bool("json", false, "emit JSON instead of tab-separated text")
		verbose = flag.Bool("v", false, "log every merge")
	)
	flag.Parse()
	cutSet := wasSet(flag.CommandLine, "cut")
	countSet := wasSet(flag.CommandLine, "n")

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cutSet && countSet {
		logger.Error("choose one of -cut or -n, not both")
		os.Exit(2)
	}

	m, err := readInput(flag.Arg(0), *full)
	if err != nil {
		logger.Error("reading distance table", "error", err)
		os.Exit(1)
	}

	cfg := hclust.DefaultConfig()
	cfg.Linkage = hclust.Linkage(*linkage)
	cfg.Logger = logger

	dend, err := hclust.Cluster(m, cfg)
	if err != nil {
		logger.Error("clustering failed", "error", err)
		os.Exit(1)
	}

	switch {
	case cutSet:
		groups, err := dend.CutByHeight(*cutAt)
		if err != nil {
			logger.Error("cut failed", "error", err)
			os.Exit(1)
		}
		err = emitGroups(groups, *asJSON)
		if err != nil {
			logger.Error("writing output", "error", err)
			os.Exit(1)
		}
	case countSet:
		groups, err := dend.CutByCount(*count)
		if err != nil {
			logger.Error("cut failed", "error", err)
			os.Exit(1)
		}
		err = emitGroups(groups, *asJSON)
		if err != nil {
			logger.Error("writing output", "error", err)
			os.Exit(1)
		}
	default:
		if err := emitMerges(dend, *asJSON); err != nil {
			logger.Error("writing output", "error", err)
			os.Exit(1)
		}
	}
}

// wasSet reports whether a flag was given explicitly on the command line,
// so an explicit -cut 0 or a negative height is not mistaken for "no cut".
func wasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func readInput(path string, full bool) (*hclust.DistanceMatrix, error) {
	if path == "" || path == "-" {
		if full {
			return hclust.ReadFullMatrix(os.Stdin)
		}
		return hclust.ReadMatrix(os.Stdin)
	}
	return hclust.LoadMatrix(path, full)
}

func emitGroups(groups [][]string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	}
	for _, g := range groups {
		if _, err := fmt.Println(strings.Join(g, "\t")); err != nil {
			return err
		}
	}
	return nil
}

type mergeRecord struct {
	Height  float64  `json:"height"`
	Members []string `json:"members"`
}

func emitMerges(dend *hclust.Dendrogram, asJSON bool) error {
	if asJSON {
		merges := make([]mergeRecord, 0, len(dend.Nodes))
		for _, n := range dend.Nodes {
			if n.IsLeaf() {
				continue
			}
			merges = append(merges, mergeRecord{Height: n.Height, Members: n.Members})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(merges)
	}
	for _, n := range dend.Nodes {
		if n.IsLeaf() {
			continue
		}
		if _, err := fmt.Printf("%g\t%s\n", n.Height, strings.Join(n.Members, "\t")); err != nil {
			return err
		}
	}
	return nil
}
