package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textlens/internal/adapter/fs"
	"textlens/internal/domain"
)

var (
	analyzeText  string
	analyzeFile  string
	analyzeJSON  bool
	analyzeLocal bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one text",
	Long: `Analyze a single text given with -t, read from a file with -f, or
piped on stdin. Questions are rejected; only statements are analyzed.

Examples:
  textlens analyze -t "Bugun ajoyib kun, men juda xursandman!"
  textlens analyze -f maqola.txt --json
  cat maqola.txt | textlens analyze --local`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "text to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read the text from a file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeLocal, "local", false, "skip the remote analyzer")
	analyzeCmd.MarkFlagsMutuallyExclusive("text", "file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(analyzeText, analyzeFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	uc, err := newAnalyzeUseCase(GetConfig(), !analyzeLocal)
	if err != nil {
		return err
	}

	report, err := uc.Analyze(cmd.Context(), text)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s (%s)", verr.Message, verr.Kind)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err = fmt.Fprintln(out, report.Message)
	return err
}

// readInput picks the text from the flag, the file, or stdin in that order.
func readInput(text, file string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		text, err := fs.ReadText(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return text, nil
	}
	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", errors.New("no input: use -t, -f or pipe text on stdin")
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
