package transfer_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/entity"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/geobounds-service/internal/mocks"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/object"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/transfer"
)

type fixture struct {
	objectRepo *mocks.MockObjectRepository
	creator    *mocks.MockObjectCreator
	storage    *mocks.MockExportStorage
	svc        *transfer.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		objectRepo: mocks.NewMockObjectRepository(ctrl),
		creator:    mocks.NewMockObjectCreator(ctrl),
		storage:    mocks.NewMockExportStorage(ctrl),
	}
	field := fielddef.NewGeobounds("area", "Area", false)
	f.svc = transfer.NewService(f.objectRepo, f.creator, f.storage, field, zap.NewNop())
	return f
}

func TestService_WriteCSV(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	withBounds := entity.NewObject(userID, "Harbour", valueobject.NewGeoBounds(
		valueobject.NewGeoCoordinate(12.5, -3.1),
		valueobject.NewGeoCoordinate(10, -5),
	))
	without := entity.NewObject(userID, "Empty", nil)

	f.objectRepo.EXPECT().ListAll(ctx, userID).Return([]entity.Object{*withBounds, *without}, nil)

	data, rows, err := f.svc.WriteCSV(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "title", "area"}, records[0])
	assert.Equal(t, []string{withBounds.ID.String(), "Harbour", "-3.1,12.5|-5,10"}, records[1])
	assert.Equal(t, []string{without.ID.String(), "Empty", ""}, records[2])
}

func TestService_Export(t *testing.T) {
	t.Run("uploads csv and returns urls", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		userID := uuid.New()

		f.objectRepo.EXPECT().ListAll(ctx, userID).Return(nil, nil)
		f.storage.EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "text/csv", int64(len("id,title,area\n"))).
			DoAndReturn(func(_ context.Context, key string, r io.Reader, _ string, _ int64) error {
				assert.True(t, strings.HasPrefix(key, "exports/"+userID.String()+"/"))
				assert.True(t, strings.HasSuffix(key, ".csv"))
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, "id,title,area\n", string(data))
				return nil
			})
		f.storage.EXPECT().GetSignedURL(gomock.Any(), gomock.Any()).Return("https://signed", nil)
		f.storage.EXPECT().GetURL(gomock.Any()).Return("https://bucket/key")

		result, err := f.svc.Export(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Rows)
		assert.Equal(t, "https://bucket/key", result.URL)
		assert.Equal(t, "https://signed", result.SignedURL)
	})

	t.Run("presign failure still returns the object url", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		userID := uuid.New()

		f.objectRepo.EXPECT().ListAll(ctx, userID).Return(nil, nil)
		f.storage.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.storage.EXPECT().GetSignedURL(gomock.Any(), gomock.Any()).Return("", errors.New("no credentials"))
		f.storage.EXPECT().GetURL(gomock.Any()).Return("https://bucket/key")

		result, err := f.svc.Export(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, result.SignedURL)
	})

	t.Run("returns upload error", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		uploadErr := errors.New("access denied")

		f.objectRepo.EXPECT().ListAll(ctx, userID).Return(nil, nil)
		f.storage.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uploadErr)

		_, err := f.svc.Export(ctx, userID)

		assert.ErrorIs(t, err, uploadErr)
	})
}

func TestService_Import(t *testing.T) {
	t.Run("imports rows and counts unreadable bounds", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		userID := uuid.New()

		input := "title,area\n" +
			"Harbour,\"-3.1,12.5|-5,10\"\n" +
			"Broken,\"abc|def\"\n" +
			"Empty,\n"

		var created []object.CreateInput
		f.creator.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in object.CreateInput) (*entity.Object, error) {
				created = append(created, in)
				return entity.NewObject(in.UserID, in.Title, in.Bounds), nil
			}).
			Times(3)

		result, err := f.svc.Import(ctx, userID, strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 3, result.Imported)
		assert.Equal(t, 1, result.EmptyBounds)
		assert.Empty(t, result.Rejected)

		require.Len(t, created, 3)
		require.NotNil(t, created[0].Bounds)
		assert.Equal(t, 12.5, created[0].Bounds.NorthEast.Latitude)
		assert.Equal(t, -5.0, created[0].Bounds.SouthWest.Longitude)
		assert.Nil(t, created[1].Bounds)
		assert.Nil(t, created[2].Bounds)
	})

	t.Run("rejects rows failing validation", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		input := "id,title,area\n1,Zero,\"0,0|1,1\"\n"
		validationErr := &fielddef.ValidationError{Field: "area", Err: domain.ErrMissingRequiredValue}

		f.creator.EXPECT().Create(ctx, gomock.Any()).Return(nil, validationErr)

		result, err := f.svc.Import(ctx, uuid.New(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.EmptyBounds)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, 2, result.Rejected[0].Line)
		assert.Equal(t, "Empty mandatory field [ area ]", result.Rejected[0].Message)
	})

	t.Run("rejects rows with missing columns", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.svc.Import(context.Background(), uuid.New(), strings.NewReader("title,area\nlonely\n"))

		require.NoError(t, err)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, "missing columns", result.Rejected[0].Message)
	})

	t.Run("aborts on unexpected error", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		dbErr := errors.New("connection refused")

		f.creator.EXPECT().Create(ctx, gomock.Any()).Return(nil, dbErr)

		_, err := f.svc.Import(ctx, uuid.New(), strings.NewReader("title,area\nA,\nB,\n"))

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("stops when the reader keeps failing", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		readErr := errors.New("connection reset")

		f.creator.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in object.CreateInput) (*entity.Object, error) {
				return entity.NewObject(in.UserID, in.Title, in.Bounds), nil
			})

		input := io.MultiReader(strings.NewReader("title,area\nA,\n"), iotest.ErrReader(readErr))
		result, err := f.svc.Import(ctx, uuid.New(), input)

		require.Error(t, err)
		assert.ErrorIs(t, err, readErr)
		assert.ErrorIs(t, err, domain.ErrInvalidCSV)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Imported)
		assert.Empty(t, result.Rejected)
	})

	t.Run("stops at the body size limit", func(t *testing.T) {
		f := newFixture(t)

		body := io.NopCloser(strings.NewReader("title,area\n" + strings.Repeat("x", 64) + ",\n"))
		limited := http.MaxBytesReader(httptest.NewRecorder(), body, 16)

		_, err := f.svc.Import(context.Background(), uuid.New(), limited)

		var sizeErr *http.MaxBytesError
		assert.ErrorAs(t, err, &sizeErr)
	})

	t.Run("rejects malformed rows and continues", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.creator.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in object.CreateInput) (*entity.Object, error) {
				return entity.NewObject(in.UserID, in.Title, in.Bounds), nil
			})

		input := "title,area\n\"bad\"x,\nB,\n"
		result, err := f.svc.Import(ctx, uuid.New(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, 2, result.Rejected[0].Line)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.svc.Import(ctx, uuid.New(), strings.NewReader("title,area\nA,\n"))

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("requires title and field columns", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Import(context.Background(), uuid.New(), strings.NewReader("name,bounds\nx,y\n"))

		assert.ErrorIs(t, err, domain.ErrInvalidCSV)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Import(context.Background(), uuid.New(), strings.NewReader(""))

		assert.ErrorIs(t, err, domain.ErrInvalidCSV)
	})
}
