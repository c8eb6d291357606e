// Package extract defines the contracts joining the two OCR backends
// to the normalization engine. The engine itself never learns how its
// input was obtained.
package extract

import (
	"context"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
)

// Upload is one receipt file received from a client.
type Upload struct {
	Filename string
	Data     []byte
}

// TextRecognizer is the local backend: image file on disk -> raw text.
type TextRecognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// DocumentInferencer is the cloud backend: file bytes -> decoded
// document-understanding response. It owns polling and error
// translation for network and auth failures.
type DocumentInferencer interface {
	EnqueueAndWait(ctx context.Context, filename string, data []byte) (map[string]any, error)
}

// Processor turns one upload into the canonical expense record.
type Processor interface {
	Process(ctx context.Context, upload Upload) (entity.ExtractedExpense, error)
}
