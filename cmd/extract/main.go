// Command extract runs one file through the normalization engine and
// prints the canonical record: a .json argument is treated as a saved
// document-understanding response, anything else as recognized text.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
	"github.com/edenbergel/SmartReceiptApp/internal/fields"
	"github.com/edenbergel/SmartReceiptApp/internal/textextract"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: extract <response.json | ocr-text-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	var expense entity.ExtractedExpense
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var response map[string]any
		if err := json.Unmarshal(data, &response); err != nil {
			logger.Error("decode response", "path", path, "error", err)
			os.Exit(1)
		}
		inference := fields.ExtractInference(response)
		bag := fields.ExtractFieldBag(inference, response)
		if len(bag) == 0 {
			logger.Error("response missing prediction data", "path", path)
			os.Exit(1)
		}
		expense = fields.MapPrediction(bag, inference, response)
	} else {
		expense = textextract.Extract(string(data))
	}

	out, err := json.MarshalIndent(expense, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
