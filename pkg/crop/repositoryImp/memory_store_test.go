package repositoryImp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
)

var fixedNow = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

func newStore(t *testing.T, seed ...entities.CropRecord) *MemoryStore {
	t.Helper()
	s, err := NewMemoryStore(seed, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s
}

func ptr[T any](v T) *T { return &v }

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	s := newStore(t)

	a, err := s.Insert(entities.CropRecord{ID: 99, CropType: "Corn"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), a.ID, "caller id is ignored, empty store starts at 1")
	assert.Equal(t, fixedNow, a.CreatedAt)

	b, _ := s.Insert(entities.CropRecord{CropType: "Wheat"})
	c, _ := s.Insert(entities.CropRecord{CropType: "Oats"})
	_, err = s.Remove(c.ID)
	require.NoError(t, err)
	_, err = s.Remove(b.ID)
	require.NoError(t, err)

	d, _ := s.Insert(entities.CropRecord{CropType: "Barley"})
	assert.Equal(t, uint(4), d.ID, "ids are never reused after deletes")
	assert.Equal(t, uint(5), s.NextID())
}

func TestSeedInitialisesCounter(t *testing.T) {
	s := newStore(t,
		entities.CropRecord{ID: 3, CropType: "Corn"},
		entities.CropRecord{CropType: "Wheat"},
		entities.CropRecord{ID: 10, CropType: "Oats"},
	)

	ids := []uint{}
	for _, r := range s.List() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []uint{3, 11, 10}, ids, "insertion order kept, id-less rows numbered after max")

	r, _ := s.Insert(entities.CropRecord{CropType: "Carrots"})
	assert.Equal(t, uint(12), r.ID)
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	_, err := NewMemoryStore([]entities.CropRecord{{ID: 2}, {ID: 2}})
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestListReturnsCopies(t *testing.T) {
	s := newStore(t, entities.CropRecord{ID: 1, Kind: entities.KindRotationPlan, CropSequence: []string{"Corn", "Soybeans"}})

	list := s.List()
	list[0].CropSequence[0] = "Tomatoes"
	list[0].Notes = "changed"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Corn", "Soybeans"}, got.CropSequence)
	assert.Empty(t, got.Notes)
}

func TestGetMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Get(42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReplaceMergesPresentFields(t *testing.T) {
	s := newStore(t, entities.CropRecord{
		ID: 1, FarmID: 2, Kind: entities.KindCrop, CropType: "Corn",
		Status: entities.StatusGrowing, Quantity: 40, Location: "North field",
	})

	got, err := s.Replace(1, entities.CropPatch{
		Status:   ptr(entities.StatusHarvested),
		Quantity: ptr(120.0),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusHarvested, got.Status)
	assert.Equal(t, 120.0, got.Quantity)
	assert.Equal(t, "North field", got.Location, "absent fields are preserved")
	assert.Equal(t, "Corn", got.CropType)
	assert.Equal(t, fixedNow, got.UpdatedAt)

	stored, _ := s.Get(1)
	assert.Equal(t, got, stored)

	_, err = s.Replace(7, entities.CropPatch{Notes: ptr("x")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemove(t *testing.T) {
	s := newStore(t,
		entities.CropRecord{ID: 1, CropType: "Corn"},
		entities.CropRecord{ID: 2, CropType: "Wheat"},
		entities.CropRecord{ID: 3, CropType: "Oats"},
	)

	removed, err := s.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, "Wheat", removed.CropType)

	_, err = s.Get(2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Oats", s.List()[1].CropType)

	_, err = s.Remove(2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestConditionalWrites(t *testing.T) {
	s := newStore(t,
		entities.CropRecord{ID: 1, Kind: entities.KindCrop, CropType: "Corn"},
		entities.CropRecord{ID: 2, Kind: entities.KindRotationPlan, CropSequence: []string{"Corn", "Oats"}},
	)
	isPlan := func(r entities.CropRecord) bool { return r.IsPlan() }
	isCrop := func(r entities.CropRecord) bool { return !r.IsPlan() }

	_, err := s.ReplaceIf(2, entities.CropPatch{Kind: ptr(entities.KindCrop)}, isCrop)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = s.RemoveIf(1, isPlan)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = s.ReplaceIf(9, entities.CropPatch{Notes: ptr("x")}, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 2, s.Len())

	got, err := s.ReplaceIf(2, entities.CropPatch{Notes: ptr("dry year")}, isPlan)
	require.NoError(t, err)
	assert.Equal(t, "dry year", got.Notes)

	removed, err := s.RemoveIf(2, isPlan)
	require.NoError(t, err)
	assert.Equal(t, uint(2), removed.ID)
	assert.Equal(t, 1, s.Len())
}

func TestGuardedWritesKeepKindUnderContention(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newStore(t, entities.CropRecord{ID: 1, Kind: entities.KindRotationPlan, CropSequence: []string{"Corn", "Oats"}})
	isPlan := func(r entities.CropRecord) bool { return r.IsPlan() }
	isCrop := func(r entities.CropRecord) bool { return !r.IsPlan() }

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.ReplaceIf(1, entities.CropPatch{Kind: ptr(entities.KindCrop)}, isCrop)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.ReplaceIf(1, entities.CropPatch{Notes: ptr("rotated")}, isPlan)
		}()
	}
	wg.Wait()

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.True(t, got.IsPlan())
	assert.Equal(t, "rotated", got.Notes)
}

func TestConcurrentInsertsKeepIDsUnique(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newStore(t)
	const workers, each = 8, 50

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[uint]bool{}
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				r, err := s.Insert(entities.CropRecord{CropType: "Corn"})
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				ids[r.ID] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers*each)
	assert.Equal(t, workers*each, s.Len())
}
