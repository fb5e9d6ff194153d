package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/crab/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	interval := flag.Duration("interval", time.Second/60, "The time between frames.")
	inputEvery := flag.Uint64("input-every", 15, "Press a random game key every N frames. Zero disables input.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for snack spawning and key presses.")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting crab soak run...")
	s := newSoak(settings.Game, *seed, *inputEvery)
	driver := s.driver()

	report := &Report{
		Duration:   *duration,
		Interval:   *interval,
		InputEvery: *inputEvery,
		Seed:       *seed,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	driver.Run(ctx, *interval)
	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Collect(s, driver.Stats())
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.SnacksIntact {
		log.Fatalf("Snack pool changed size: %d, want %d", report.Snacks, report.SnackCount)
	}
}
