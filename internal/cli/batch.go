package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"textlens/internal/adapter/fs"
	"textlens/internal/domain"
	"textlens/internal/logger"
	"textlens/internal/usecase"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Analyze every text file in a directory",
	Long: `Analyze each file matching batch.includes under the directory as one
text. Files that fail validation are reported and do not stop the run.

Examples:
  textlens batch .              # Analyze the current directory
  textlens batch docs --json    # JSON lines, one per file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "print one JSON object per file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	uc, err := newAnalyzeUseCase(cfg, true)
	if err != nil {
		return err
	}
	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	batchUC := usecase.NewBatchUseCase(uc, walker, cfg.Batch.Workers, logger.Log)

	files, err := batchUC.Files(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No matching files in %s\n", path)
		return nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(cmd.ErrOrStderr())
		}),
	)
	var barMu sync.Mutex

	items, err := batchUC.Run(cmd.Context(), path, func(string) {
		barMu.Lock()
		defer barMu.Unlock()
		_ = bar.Add(1)
	})
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if batchJSON {
		enc := json.NewEncoder(out)
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	}

	counts := map[domain.Sentiment]int{}
	rejected := 0
	for _, item := range items {
		if item.Report == nil {
			rejected++
			fmt.Fprintf(out, "%-40s  xato: %s\n", item.Path, item.Error)
			continue
		}
		r := item.Report
		counts[r.Sentiment.Label]++
		fmt.Fprintf(out, "%-40s  %-8s %3d%%  %-18s %d so'z\n",
			item.Path, r.Sentiment.Label.Label(), r.Sentiment.Confidence, r.Readability.Grade.Label(), r.Stats.Words)
	}

	fmt.Fprintf(out, "\nJami: %d fayl, ijobiy %d, salbiy %d, neytral %d, rad etilgan %d\n",
		len(items), counts[domain.Positive], counts[domain.Negative], counts[domain.Neutral], rejected)
	return nil
}
