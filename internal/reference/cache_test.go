package reference_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/mock"
	"github.com/MKhiriev/beichen-observer/internal/reference"
	"github.com/MKhiriev/beichen-observer/models"
)

func collection(entities ...models.ReferenceEntity) models.ReferenceCollection {
	return models.ReferenceCollection{Items: entities}
}

func expectAll(loader *mock.MockLoader) {
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceCampus).
		Return(collection(models.ReferenceEntity{ID: "c1", Name: "北辰幼儿园"}), nil).Times(1)
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceClass).
		Return(collection(models.ReferenceEntity{ID: "k1", Name: "大一班"}), nil).Times(1)
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceTeacher).
		Return(models.ReferenceCollection{
			Items:     []models.ReferenceEntity{{ID: "t1", Name: "王老师"}},
			Paginated: true, Total: 1, Page: 1, PageSize: 20,
		}, nil).Times(1)
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceLeader).
		Return(collection(), nil).Times(1)
}

func TestCache_LoadAllFetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockLoader(ctrl)
	expectAll(loader)

	cache := reference.NewCache(logger.Nop())

	snapshot, err := cache.LoadAll(context.Background(), loader)
	require.NoError(t, err)
	assert.Len(t, snapshot, len(models.ReferenceKinds))
	assert.Equal(t, 1, snapshot[models.ReferenceTeacher].Len())

	again, err := cache.LoadAll(context.Background(), loader)
	require.NoError(t, err)
	assert.Equal(t, snapshot, again)
}

func TestCache_ConcurrentLoadAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockLoader(ctrl)
	expectAll(loader)

	cache := reference.NewCache(logger.Nop())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.LoadAll(context.Background(), loader)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for _, kind := range models.ReferenceKinds {
		assert.True(t, cache.Loaded(kind), kind)
	}
}

func TestCache_FailedKindIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockLoader(ctrl)
	boom := errors.New("boom")

	cache := reference.NewCache(logger.Nop())

	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceCampus).Return(models.ReferenceCollection{}, boom)
	_, err := cache.Load(context.Background(), loader, models.ReferenceCampus)
	require.ErrorIs(t, err, boom)
	assert.False(t, cache.Loaded(models.ReferenceCampus))

	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceCampus).
		Return(collection(models.ReferenceEntity{ID: "c1", Name: "北辰幼儿园"}), nil)
	got, err := cache.Load(context.Background(), loader, models.ReferenceCampus)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.True(t, cache.Loaded(models.ReferenceCampus))
}

func TestCache_LoadAllKeepsLoadedKindsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockLoader(ctrl)
	boom := errors.New("boom")

	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceCampus).Return(collection(), nil)
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceClass).Return(collection(), nil)
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceTeacher).Return(collection(), nil)
	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceLeader).Return(models.ReferenceCollection{}, boom)

	cache := reference.NewCache(logger.Nop())

	_, err := cache.LoadAll(context.Background(), loader)
	require.ErrorIs(t, err, boom)
	assert.False(t, cache.Loaded(models.ReferenceLeader))

	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceLeader).Return(collection(), nil)
	snapshot, err := cache.LoadAll(context.Background(), loader)
	require.NoError(t, err)
	assert.Len(t, snapshot, len(models.ReferenceKinds))
}

func TestCache_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockLoader(ctrl)
	expectAll(loader)

	cache := reference.NewCache(logger.Nop())

	_, ok := cache.IDByName(models.ReferenceTeacher, "王老师")
	assert.False(t, ok, "nothing is loaded yet")

	_, err := cache.LoadAll(context.Background(), loader)
	require.NoError(t, err)

	id, ok := cache.IDByName(models.ReferenceTeacher, "王老师")
	assert.True(t, ok)
	assert.Equal(t, models.ID("t1"), id)

	name, ok := cache.NameByID(models.ReferenceClass, "k1")
	assert.True(t, ok)
	assert.Equal(t, "大一班", name)

	_, ok = cache.IDByName(models.ReferenceClass, "王老师")
	assert.False(t, ok, "names are looked up within a kind")

	_, ok = cache.IDByName(models.ReferenceTeacher, "")
	assert.False(t, ok)

	_, ok = cache.NameByID(models.ReferenceCampus, "")
	assert.False(t, ok)
}

func TestCache_SharedFetchIgnoresCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockLoader(ctrl)

	loader.EXPECT().FetchReference(gomock.Any(), models.ReferenceCampus).
		DoAndReturn(func(ctx context.Context, _ models.ReferenceKind) (models.ReferenceCollection, error) {
			if err := ctx.Err(); err != nil {
				return models.ReferenceCollection{}, err
			}
			return collection(models.ReferenceEntity{ID: "c1", Name: "北辰幼儿园"}), nil
		})

	cache := reference.NewCache(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := cache.Load(ctx, loader, models.ReferenceCampus)
	require.NoError(t, err, "callers joining the fetch must not inherit the starter's cancellation")
	assert.Equal(t, 1, got.Len())
	assert.True(t, cache.Loaded(models.ReferenceCampus))
}
