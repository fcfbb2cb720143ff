package photo

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/cleaningreport/internal/domain"
)

// ExportReports writes every photo attached to reports into store, named
// report_<id>_<index>. Photos that are not valid data URLs are logged and
// skipped. It returns the storage keys written.
func ExportReports(ctx context.Context, store Store, reports []domain.Report, logger *slog.Logger) ([]string, error) {
	var keys []string
	for _, report := range reports {
		for i, dataURL := range report.Photos {
			data, mimeType, err := DecodeDataURL(dataURL)
			if err != nil {
				logger.Warn("skipping report photo", "report_id", report.ID, "index", i, "error", err)
				continue
			}
			key, err := store.Save(ctx, fmt.Sprintf("report_%d_%d", report.ID, i), mimeType, bytes.NewReader(data))
			if err != nil {
				return keys, fmt.Errorf("failed to save photo %d of report %d: %w", i, report.ID, err)
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}
