package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"textlens/config"
	"textlens/internal/adapter/lexicon"
)

var (
	lexiconStore  string
	lexiconOutput string
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the lexicon store",
	Long: `Import, export and inspect the lexicon store used when
lexicon.source is "bolt". The store defaults to .textlens/lexicon.db.`,
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace the stored lexicon with a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconImport,
}

var lexiconExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active lexicon as YAML",
	Args:  cobra.NoArgs,
	RunE:  runLexiconExport,
}

var lexiconStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lexicon set sizes",
	Args:  cobra.NoArgs,
	RunE:  runLexiconStats,
}

func init() {
	lexiconCmd.PersistentFlags().StringVar(&lexiconStore, "store", "", "lexicon store path (default is lexicon.path or .textlens/lexicon.db)")
	lexiconExportCmd.Flags().StringVarP(&lexiconOutput, "output", "o", "", "output file (default is stdout)")
	lexiconCmd.AddCommand(lexiconImportCmd, lexiconExportCmd, lexiconStatsCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func storePath() string {
	if lexiconStore != "" {
		return lexiconStore
	}
	cfg := GetConfig()
	if cfg.Lexicon.Source == config.LexiconBolt && cfg.Lexicon.Path != "" {
		return cfg.Lexicon.Path
	}
	return config.LexiconDBPath(GetRootDir())
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	d, err := lexicon.LoadFile(args[0])
	if err != nil {
		return err
	}

	path := storePath()
	if path == config.LexiconDBPath(GetRootDir()) {
		if err := config.EnsureDataDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create .textlens directory: %w", err)
		}
	}

	st, err := lexicon.NewBoltStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Import(d, filepath.Base(args[0])); err != nil {
		return err
	}
	info, err := st.Info()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", args[0], path)
	printStats(cmd, info.Stats)
	return nil
}

func runLexiconExport(cmd *cobra.Command, args []string) error {
	lex, err := lexicon.Open(GetConfig().Lexicon)
	if err != nil {
		return err
	}
	if lexiconOutput != "" {
		if err := lexicon.SaveFile(lexiconOutput, lex.Data()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Lexicon written to %s\n", lexiconOutput)
		return nil
	}
	return lexicon.WriteYAML(cmd.OutOrStdout(), lex.Data())
}

func runLexiconStats(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	if cfg.Lexicon.Source != config.LexiconBolt && lexiconStore == "" {
		lex, err := lexicon.Open(cfg.Lexicon)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Source: %s\n", cfg.Lexicon.Source)
		printStats(cmd, lex.Stats())
		return nil
	}

	st, err := lexicon.NewBoltStore(storePath())
	if err != nil {
		return err
	}
	defer st.Close()

	info, err := st.Info()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Store:    %s\n", storePath())
	fmt.Fprintf(out, "Imported: %s (%s)\n", info.Source, info.ImportedAt)
	printStats(cmd, info.Stats)
	return nil
}

func printStats(cmd *cobra.Command, s lexicon.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Positive:  %d\n", s.Positive)
	fmt.Fprintf(out, "  Negative:  %d\n", s.Negative)
	fmt.Fprintf(out, "  Neutral:   %d\n", s.Neutral)
	fmt.Fprintf(out, "  Stopwords: %d\n", s.Stopwords)
}
