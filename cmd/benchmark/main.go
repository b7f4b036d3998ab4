package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"textlens/config"
	"textlens/internal/adapter/fs"
	"textlens/internal/adapter/lexicon"
	"textlens/internal/logger"
	"textlens/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Directory with sample texts")
	rounds := flag.Int("n", 20, "Passes over the corpus")
	flag.Parse()

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lex, err := lexicon.Open(cfg.Lexicon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}

	logger.Log.SetLevel(logrus.ErrorLevel)
	uc := usecase.NewAnalyzeUseCase(cfg, lex, nil, logger.Log)

	files, err := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes).Walk(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking %s: %v\n", *dir, err)
		os.Exit(1)
	}

	var texts []string
	var totalChars int
	for _, f := range files {
		text, err := fs.ReadText(f.Path)
		if err != nil || uc.Validate(text) != nil {
			continue
		}
		texts = append(texts, text)
		totalChars += len([]rune(text))
	}
	if len(texts) == 0 {
		fmt.Println("Usage: go run ./cmd/benchmark -dir ./samples -n 20")
		fmt.Println("\nNo valid statements found. Add .txt or .md files with Uzbek statements.")
		os.Exit(1)
	}

	fmt.Println("LOCAL ANALYSIS BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Texts:      %d (%d rejected)\n", len(texts), len(files)-len(texts))
	fmt.Printf("Characters: %d\n", totalChars)
	fmt.Printf("Passes:     %d\n", *rounds)
	fmt.Println()

	ctx := context.Background()
	durations := make([]time.Duration, 0, len(texts)*(*rounds))
	start := time.Now()
	for i := 0; i < *rounds; i++ {
		for _, text := range texts {
			t0 := time.Now()
			if _, err := uc.AnalyzeLocal(ctx, text); err != nil {
				fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
				os.Exit(1)
			}
			durations = append(durations, time.Since(t0))
		}
	}
	elapsed := time.Since(start)

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	pct := func(p float64) time.Duration {
		return durations[int(p*float64(len(durations)-1))]
	}

	fmt.Println(strings.Repeat("-", 70))
	fmt.Printf("Analyses:   %d in %s\n", len(durations), elapsed.Round(time.Millisecond))
	fmt.Printf("Throughput: %.0f texts/s, %.0f chars/s\n",
		float64(len(durations))/elapsed.Seconds(),
		float64(totalChars*(*rounds))/elapsed.Seconds())
	fmt.Printf("Latency:    p50 %s  p90 %s  p99 %s  max %s\n",
		pct(0.5), pct(0.9), pct(0.99), durations[len(durations)-1])
}
