package transfer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/repository"
	"github.com/marcos-nsantos/geobounds-service/internal/adapter/storage"
	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/object"
)

//go:generate mockgen -source=service.go -destination=../../mocks/transfer_mocks.go -package=mocks

const (
	csvContentType  = "text/csv"
	signedURLExpiry = 24 * time.Hour
)

// ObjectCreator creates objects through the regular validation and
// versioning path.
type ObjectCreator interface {
	Create(ctx context.Context, input object.CreateInput) (*entity.Object, error)
}

type Service struct {
	objectRepo repository.ObjectRepository
	creator    ObjectCreator
	storage    storage.ExportStorage
	field      *fielddef.Geobounds
	logger     *zap.Logger
}

func NewService(
	objectRepo repository.ObjectRepository,
	creator ObjectCreator,
	exportStorage storage.ExportStorage,
	field *fielddef.Geobounds,
	logger *zap.Logger,
) *Service {
	return &Service{
		objectRepo: objectRepo,
		creator:    creator,
		storage:    exportStorage,
		field:      field,
		logger:     logger,
	}
}

// WriteCSV renders the user's live objects as "id,title,<field>" rows.
func (s *Service) WriteCSV(ctx context.Context, userID uuid.UUID) ([]byte, int, error) {
	objects, err := s.objectRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("listing objects: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "title", s.field.GetName()}); err != nil {
		return nil, 0, fmt.Errorf("writing csv header: %w", err)
	}
	for _, o := range objects {
		if err := w.Write([]string{o.ID.String(), o.Title, s.field.ForCsvExport(o.Bounds)}); err != nil {
			return nil, 0, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), len(objects), nil
}

type ExportResult struct {
	Key       string
	URL       string
	SignedURL string
	Rows      int
}

// Export uploads the CSV rendering to object storage.
func (s *Service) Export(ctx context.Context, userID uuid.UUID) (*ExportResult, error) {
	data, rows, err := s.WriteCSV(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s.csv", userID, uuid.New().String())
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), csvContentType, int64(len(data))); err != nil {
		return nil, fmt.Errorf("uploading export: %w", err)
	}

	signedURL, err := s.storage.GetSignedURL(key, signedURLExpiry)
	if err != nil {
		s.logger.Warn("presigning export failed", zap.String("key", key), zap.Error(err))
	}

	observability.Exports.Inc()
	s.logger.Info("objects exported", zap.String("key", key), zap.Int("rows", rows))

	return &ExportResult{
		Key:       key,
		URL:       s.storage.GetURL(key),
		SignedURL: signedURL,
		Rows:      rows,
	}, nil
}

type RowError struct {
	Line    int
	Message string
}

type ImportResult struct {
	Imported    int
	EmptyBounds int
	Rejected    []RowError
}

// Import reads rows with a "title" column and a column named after the bounds
// field. An unreadable bounds cell imports as an empty field; rows that then
// fail validation are rejected and reported.
func (s *Service) Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", domain.ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCSV, err)
	}

	titleIdx, boundsIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			titleIdx = i
		case s.field.GetName():
			boundsIdx = i
		}
	}
	if titleIdx < 0 || boundsIdx < 0 {
		return nil, fmt.Errorf("%w: header must contain title and %s", domain.ErrInvalidCSV, s.field.GetName())
	}

	result := &ImportResult{}
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			// Only syntax errors are confined to one row; errors from the
			// underlying reader repeat on every later Read.
			var pErr *csv.ParseError
			if !errors.As(err, &pErr) {
				return result, fmt.Errorf("%w: line %d: %w", domain.ErrInvalidCSV, line, err)
			}
			result.Rejected = append(result.Rejected, RowError{Line: line, Message: err.Error()})
			observability.ImportRows.WithLabelValues("rejected").Inc()
			continue
		}

		if titleIdx >= len(record) || boundsIdx >= len(record) {
			result.Rejected = append(result.Rejected, RowError{Line: line, Message: "missing columns"})
			observability.ImportRows.WithLabelValues("rejected").Inc()
			continue
		}

		raw := record[boundsIdx]
		bounds := s.field.FromCsvImport(raw)
		if bounds == nil && raw != "" {
			s.logger.Warn("unreadable bounds imported as empty",
				zap.Int("line", line),
				zap.String("value", raw),
			)
			result.EmptyBounds++
			observability.ImportRows.WithLabelValues("empty_bounds").Inc()
			observability.DecodeFailures.WithLabelValues("csv").Inc()
		}

		_, err = s.creator.Create(ctx, object.CreateInput{
			UserID: userID,
			Title:  record[titleIdx],
			Bounds: bounds,
		})
		if err != nil {
			var vErr *fielddef.ValidationError
			if !errors.As(err, &vErr) {
				return result, fmt.Errorf("importing line %d: %w", line, err)
			}
			result.Rejected = append(result.Rejected, RowError{Line: line, Message: vErr.Error()})
			observability.ImportRows.WithLabelValues("rejected").Inc()
			continue
		}

		result.Imported++
		observability.ImportRows.WithLabelValues("imported").Inc()
	}

	s.logger.Info("objects imported",
		zap.Int("imported", result.Imported),
		zap.Int("empty_bounds", result.EmptyBounds),
		zap.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}
