package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"moujaz/internal/adapter/ocr"
	"moujaz/internal/api"
	"moujaz/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the summarization API:

  GET  /           health check
  POST /summarize  JSON body {"text": "...", "max_sentences": 5, ...}
  POST /ocr        multipart image upload -> extracted text + summary

The address comes from the --addr flag, the MOUJAZ_ADDR environment
variable, or the config file, in that order.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (e.g. :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	log := logger.New(cfg.Logging.Level)

	summarizer, err := newSummarizer()
	if err != nil {
		return err
	}

	binary := cfg.OCR.Binary
	if env := os.Getenv("TESSERACT_BIN"); env != "" {
		binary = env
	}
	extractor := ocr.NewTesseract(binary, cfg.OCR.Languages,
		time.Duration(cfg.OCR.TimeoutSeconds)*time.Second)

	handler := api.NewHandler(log, summarizer, extractor,
		cfg.Summarize.Options(), cfg.Server.MaxUploadBytes)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	addr := cfg.Server.Addr
	if env := os.Getenv("MOUJAZ_ADDR"); env != "" {
		addr = env
	}
	if serveAddr != "" {
		addr = serveAddr
	}

	log.Info("listening on %s", addr)
	if err := http.ListenAndServe(addr, api.WithRequestID(log, mux)); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
