// Package main implements the manifold CLI for analyzing byte buffers and
// managing a local document store.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	manifold "github.com/sepkit/manifold"
	"github.com/sepkit/manifold/codec"
	"github.com/sepkit/manifold/docstore"
	"github.com/sepkit/manifold/document"
	"github.com/sepkit/manifold/index"
)

var (
	windowBytes int
	stepBytes   int
	precision   int
	codecName   string
	percentile  float64
	storeDir    string
	compression string

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manifold",
	Short: "Structural analysis of byte buffers",
	Long: `manifold slices a byte buffer into overlapping windows, computes one
quantized signature per window and folds the results into buffer-wide
aggregates. Results are exported as JSON documents.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&windowBytes, "window-bytes", manifold.DefaultWindowBytes, "window length in bytes")
	rootCmd.PersistentFlags().IntVar(&stepBytes, "step-bytes", manifold.DefaultStepBytes, "stride between window starts in bytes")
	rootCmd.PersistentFlags().IntVar(&precision, "signature-precision", manifold.DefaultPrecision, "decimal digits kept per signature component")
	rootCmd.PersistentFlags().Float64Var(&percentile, "hazard-percentile", 0.8, "percentile for the hazard gate threshold")

	analyzeCmd.Flags().StringVar(&codecName, "codec", "json-indent", "output codec (json, json-indent, go-json)")
	ingestCmd.Flags().StringVar(&storeDir, "store", ".manifold", "document store directory")
	ingestCmd.Flags().StringVar(&compression, "compress", "zstd", "compression codec (none, zstd, lz4, gzip)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(verifyCmd)
}

// analyzeCmd analyzes a file or stdin and prints the document
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a file or stdin and print the document",
	Long: `Analyze a byte buffer and print the resulting document.

Examples:
  # Analyze a file
  manifold analyze data.bin

  # Analyze stdin with custom windowing
  cat data.bin | manifold analyze --window-bytes 32 --step-bytes 16 -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

// ingestCmd analyzes files and stores the documents
var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Analyze files and store the documents",
	Long: `Analyze one or more files and persist the resulting documents in a
local store, compressed. Document names are the file base names with a
.json suffix.

Examples:
  # Ingest into the default store
  manifold ingest a.bin b.bin

  # Ingest uncompressed into a custom directory
  manifold ingest --store ./docs --compress none data.bin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

// verifyCmd checks a snippet against a corpus
var verifyCmd = &cobra.Command{
	Use:   "verify <snippet> <corpus>...",
	Short: "Check how much of a snippet's structure occurs in a corpus",
	Long: `Analyze a snippet and a corpus of files with the same parameters,
index the corpus signatures and report how many snippet windows match.

Examples:
  manifold verify fragment.bin full1.bin full2.bin`,
	Args: cobra.MinimumNArgs(2),
	RunE: runVerify,
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", arg, err)
	}
	return data, nil
}

func config() (manifold.Config, error) {
	return manifold.NewConfig(windowBytes, stepBytes, precision)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := "-"
	if len(args) == 1 {
		target = args[0]
	}
	data, err := readInput(target)
	if err != nil {
		return err
	}

	cfg, err := config()
	if err != nil {
		return err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", codecName)
	}

	a := manifold.New(
		manifold.WithCodec(c),
		manifold.WithHazardPercentile(percentile),
	)
	doc, err := a.AnalyzeDocument(cmd.Context(), data, cfg)
	if err != nil {
		return err
	}
	out, err := a.Export(cmd.Context(), doc)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func parseCompression(name string) (docstore.Compression, error) {
	switch name {
	case "none":
		return docstore.CompressionNone, nil
	case "zstd":
		return docstore.CompressionZstd, nil
	case "lz4":
		return docstore.CompressionLZ4, nil
	case "gzip":
		return docstore.CompressionGzip, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config()
	if err != nil {
		return err
	}
	comp, err := parseCompression(compression)
	if err != nil {
		return err
	}

	local, err := docstore.NewLocalStore(storeDir)
	if err != nil {
		return err
	}
	store, err := docstore.NewCompressingStore(local, comp)
	if err != nil {
		return err
	}

	a := manifold.New(manifold.WithHazardPercentile(percentile))
	ctx := cmd.Context()

	buffers := make(map[string][]byte, len(args))
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		buffers[file] = data
	}

	results, err := a.AnalyzeBatch(ctx, buffers, cfg)
	if err != nil {
		return err
	}

	for _, file := range args {
		m := results[file]
		doc := document.Build(m)
		payload, err := a.Export(ctx, doc)
		if err != nil {
			return fmt.Errorf("export %s: %w", file, err)
		}

		name := filepath.Base(file) + ".json"
		if err := store.Put(ctx, name, payload); err != nil {
			return fmt.Errorf("store %s: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d windows, %d distinct signatures -> %s\n",
			file, doc.Aggregate.WindowCount, doc.Aggregate.DistinctSignatures, name)
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config()
	if err != nil {
		return err
	}

	a := manifold.New(manifold.WithHazardPercentile(percentile))
	ctx := cmd.Context()

	idx := index.New(cfg)
	for _, file := range args[1:] {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		m, err := a.Analyze(ctx, data, cfg)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", file, err)
		}
		if _, err := idx.Add(file, m); err != nil {
			return err
		}
	}

	snippet, err := readInput(args[0])
	if err != nil {
		return err
	}
	m, err := a.Analyze(ctx, snippet, cfg)
	if err != nil {
		return fmt.Errorf("analyze snippet: %w", err)
	}

	res, err := idx.Verify(m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "snippet: %d windows, %d distinct signatures\n", res.WindowCount, res.DistinctKeys)
	fmt.Fprintf(out, "matched: %d/%d windows (%.1f%%), %d/%d signatures (%.1f%%)\n",
		res.MatchedWindows, res.WindowCount, res.WindowRatio*100,
		res.MatchedKeys, res.DistinctKeys, res.KeyRatio*100)
	for _, match := range res.Matches {
		fmt.Fprintf(out, "  %s: %.1f%% of snippet windows\n", match.Name, match.WindowRatio*100)
	}
	return nil
}
