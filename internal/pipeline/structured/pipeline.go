// Package structured orchestrates the cloud path: document AI response
// -> inference -> field bag -> canonical expense record.
package structured

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
	"github.com/edenbergel/SmartReceiptApp/internal/fields"
)

type Pipeline struct {
	Inferencer extract.DocumentInferencer
	Logger     *slog.Logger
}

func NewPipeline(inf extract.DocumentInferencer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Inferencer: inf, Logger: logger}
}

// Process runs one upload through the cloud backend and maps the
// response. The only failure modes are upstream: transport errors and
// responses carrying zero usable fields. Mapping itself is total.
func (p *Pipeline) Process(ctx context.Context, upload extract.Upload) (entity.ExtractedExpense, error) {
	response, err := p.Inferencer.EnqueueAndWait(ctx, upload.Filename, upload.Data)
	if err != nil {
		return entity.ExtractedExpense{}, fmt.Errorf("document inference: %w", err)
	}

	inference := fields.ExtractInference(response)
	bag := fields.ExtractFieldBag(inference, response)
	keys := fields.FieldKeys(bag)
	if len(keys) == 0 {
		p.Logger.Error("structured.no_fields", "filename", upload.Filename, "has_inference", inference != nil)
		return entity.ExtractedExpense{}, fmt.Errorf("response missing prediction data")
	}

	expense := fields.MapPrediction(bag, inference, response)

	// Output sanity gate: anomalies are diagnostics, never failures.
	if doc, mErr := json.Marshal(expense); mErr == nil {
		if vErr := fields.ValidateJSONAgainstSchema(fields.BuildExpenseJSONSchema(), doc); vErr != nil {
			p.Logger.Warn("structured.schema_mismatch", "filename", upload.Filename, "error", vErr)
		}
	}

	p.Logger.Info("structured.map.ok",
		"filename", upload.Filename,
		"field_keys", len(keys),
		"merchant", expense.Merchant,
		"date", expense.Date,
		"amount", expense.Amount,
		"category", expense.Category,
		"line_items", len(expense.LineItems),
	)
	return expense, nil
}
