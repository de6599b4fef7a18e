/*
	Basic Script that writes a data file filled with random labels, for trying
	out the CLI against a large store. Usage: go run ./scripts [output-path]
*/

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/0xRadioAc7iv/daysince/internal/record"
)

const (
	defaultOutput = "daysince-sample.json"

	totalLabels = 500

	// Timestamps are spread over this many days before now
	maxAgeDays = 400
)

func main() {
	start := time.Now()

	output := defaultOutput
	if len(os.Args) > 1 {
		output = os.Args[1]
	}

	rng := rand.New(rand.NewSource(start.UnixNano()))
	entries := makeEntries(rng, start, totalLabels)

	if err := os.WriteFile(output, []byte(record.Encode(entries)), 0644); err != nil {
		fmt.Println("Error writing data file:", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d labels to %s in %v\n", len(entries), output, time.Since(start))
}

func makeEntries(rng *rand.Rand, now time.Time, n int) record.Entries {
	entries := make(record.Entries, n)
	maxAge := int64(maxAgeDays * 24 * time.Hour / time.Millisecond)

	for i := 0; i < n; i++ {
		label := fmt.Sprintf("label-%03d", i)
		entries[label] = uint64(now.UnixMilli() - rng.Int63n(maxAge))
	}

	return entries
}
