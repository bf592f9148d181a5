package importer

import (
	"fmt"
	"path/filepath"

	"github.com/nconklindev/stockcell/internal/catalog"
	"github.com/nconklindev/stockcell/internal/notify"
	"github.com/nconklindev/stockcell/internal/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Loader imports a file into a Store and reports the outcome.
type Loader struct {
	Store    *catalog.Store
	Notifier notify.Notifier
	Logger   *zap.Logger
	Variant  types.Variant
}

// Load reads filePath and replaces the store contents with its products.
// On failure the store keeps its previous contents.
func (l *Loader) Load(filePath string) (*types.ImportResult, error) {
	batchID := uuid.NewString()
	log := l.logger().With(
		zap.String("batch", batchID),
		zap.String("file", filePath),
		zap.Stringer("variant", l.Variant),
	)

	sheetName, rows, err := ReadRows(filePath)
	if err != nil {
		log.Error("import failed", zap.Error(err))
		l.notify(notify.ImportFailed())
		return nil, fmt.Errorf("import %s: %w", filepath.Base(filePath), err)
	}

	products := Normalize(rows, l.Variant)
	l.Store.Replace(products)

	log.Info("import complete",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(rows)),
		zap.Int("products", len(products)),
	)
	l.notify(notify.ImportSucceeded(len(products)))

	return &types.ImportResult{
		BatchID:  batchID,
		Source:   filePath,
		Sheet:    sheetName,
		Rows:     len(rows),
		Products: products,
	}, nil
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func (l *Loader) notify(n types.Notification) {
	if l.Notifier != nil {
		l.Notifier.Notify(n)
	}
}
