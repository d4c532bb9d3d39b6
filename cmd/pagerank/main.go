package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"crosswarped.com/xwfill/pkg/pagerank"
)

func main() {
	damping := flag.Float64("damping", pagerank.DefaultDamping, "The damping factor")
	samples := flag.Int("samples", pagerank.DefaultSamples, "The number of random-walk samples")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if flag.NArg() != 1 {
		fmt.Println("Usage: pagerank [flags] <corpus-dir>")
		os.Exit(1)
	}

	corpus, err := pagerank.Crawl(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("failed to crawl corpus")
		os.Exit(1)
	}
	if len(corpus) == 0 {
		log.Error().Str("dir", flag.Arg(0)).Msg("corpus has no pages")
		os.Exit(1)
	}

	printRanks(fmt.Sprintf("PageRank Results from Sampling (n = %d)", *samples),
		pagerank.Sample(corpus, *damping, *samples))
	printRanks("PageRank Results from Iteration",
		pagerank.Iterate(corpus, *damping))
}

func printRanks(header string, ranks map[string]float64) {
	fmt.Println(header)
	pages := lo.Keys(ranks)
	slices.Sort(pages)
	for _, page := range pages {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}
