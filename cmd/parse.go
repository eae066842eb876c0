package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jumptake/backend/gemini"
	"github.com/jumptake/backend/logger"
	"github.com/jumptake/backend/utils"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract a resume file and print the structured result as JSON",
	Long: "Converts a PDF, DOCX or plain text resume to text and runs it through the configured model.\n" +
		"Nothing is stored.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseFile(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("text-only", false, "print the extracted text without calling the model")
	parseCmd.Flags().Bool("strict", false, "fail instead of printing the placeholder result when extraction fails")

	viper.BindPFlag("text-only", parseCmd.Flags().Lookup("text-only"))
	viper.BindPFlag("strict", parseCmd.Flags().Lookup("strict"))
}

func parseFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	text, err := utils.NewDocumentExtractor().Extract(data, "", filepath.Base(path))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if viper.GetBool("text-only") {
		_, err := fmt.Fprintln(out, text)
		return err
	}

	cfg := loadConfig()
	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	oracle, err := gemini.NewOracle(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	if c, ok := oracle.(interface{ Close() error }); ok {
		defer c.Close()
	}

	extractor, err := gemini.NewResumeExtractor(oracle, cfg.AITimeout, log)
	if err != nil {
		return err
	}

	extract := extractor.Extract
	if viper.GetBool("strict") {
		extract = extractor.ExtractStrict
	}

	result, err := extract(cmd.Context(), text)
	if err != nil {
		return err
	}
	log.Debug("resume extracted", zap.String("file", path), zap.Int("text_length", len(text)))

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
