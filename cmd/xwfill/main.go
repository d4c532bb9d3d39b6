package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/pkg/puzzle"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid structure ('_' = fillable)")
	wordsFile := flag.String("words", "", "The file to load the vocabulary from")
	output := flag.String("output", "", "Optional PNG file to save the solved grid to")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")
	debug := flag.Bool("debug", false, "Enable debug logging")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *structureFile == "" || *wordsFile == "" {
		fmt.Println("Usage: xwfill -structure <file> -words <file> [-output <png>]")
		os.Exit(1)
	}

	p, err := puzzle.Load(*structureFile, *wordsFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load puzzle")
		os.Exit(1)
	}
	log.Info().
		Int("slots", len(p.Slots)).
		Int("words", len(p.Words)).
		Msg("loaded puzzle")

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Error().Err(err).Msg("error creating profile file")
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Error().Err(err).Msg("error creating memory profile file")
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("error starting CPU profile")
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	assignment, err := xwfill.New(p).Solve(ctx)
	elapsed := time.Since(start)

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	switch {
	case errors.Is(err, xwfill.ErrNoSolution):
		fmt.Println("No solution.")
		os.Exit(2)
	case err != nil:
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("solve failed")
		os.Exit(1)
	}

	log.Info().Dur("elapsed", elapsed).Msg("solved")
	fmt.Println(xwfill.LetterGrid(p, assignment).Repr())

	if *output != "" {
		if err := xwfill.LetterGrid(p, assignment).SavePNG(*output); err != nil {
			log.Error().Err(err).Msg("failed to save image")
			os.Exit(1)
		}
		log.Info().Str("path", *output).Msg("saved image")
	}
}
