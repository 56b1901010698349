package memstore_test

import (
	"bizdesk/shared/memstore"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

func newCollection() *memstore.Collection[record] {
	return memstore.New(
		func(r record) string { return r.ID },
		func(r record) time.Time { return r.CreatedAt },
	)
}

func TestCollection_ListNewestFirst(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		inserts   []record
		wantOrder []string
	}{
		{
			name: "ascending insertion",
			inserts: []record{
				{ID: "a", CreatedAt: base},
				{ID: "b", CreatedAt: base.Add(time.Minute)},
				{ID: "c", CreatedAt: base.Add(2 * time.Minute)},
			},
			wantOrder: []string{"c", "b", "a"},
		},
		{
			name: "descending insertion",
			inserts: []record{
				{ID: "c", CreatedAt: base.Add(2 * time.Minute)},
				{ID: "b", CreatedAt: base.Add(time.Minute)},
				{ID: "a", CreatedAt: base},
			},
			wantOrder: []string{"c", "b", "a"},
		},
		{
			name: "ties broken by newest insertion",
			inserts: []record{
				{ID: "first", CreatedAt: base},
				{ID: "second", CreatedAt: base},
				{ID: "third", CreatedAt: base},
			},
			wantOrder: []string{"third", "second", "first"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := newCollection()
			for _, rec := range tt.inserts {
				col.Insert(rec)
			}

			got := col.List()
			assert.Len(t, got, len(tt.wantOrder))

			for i, id := range tt.wantOrder {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestCollection_Recent(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	col := newCollection()
	for i := range 10 {
		col.Insert(record{ID: strconv.Itoa(i), CreatedAt: base.Add(time.Duration(i) * time.Second)})
	}

	recent := col.Recent(3)
	assert.Len(t, recent, 3)
	assert.Equal(t, "9", recent[0].ID)
	assert.Equal(t, "8", recent[1].ID)
	assert.Equal(t, "7", recent[2].ID)

	assert.Len(t, col.Recent(100), 10)
}

func TestCollection_Update(t *testing.T) {
	col := newCollection()
	col.Insert(record{ID: "a", Email: "a@x.com", CreatedAt: time.Now()})

	updated, ok := col.Update("a", func(r record) record {
		r.Email = "b@x.com"

		return r
	})
	assert.True(t, ok)
	assert.Equal(t, "b@x.com", updated.Email)

	stored, _ := col.Get("a")
	assert.Equal(t, "b@x.com", stored.Email)

	_, ok = col.Update("missing", func(r record) record { return r })
	assert.False(t, ok)
	assert.Equal(t, 1, col.Len())
}

func TestCollection_FindOrInsert(t *testing.T) {
	col := newCollection()

	first, inserted := col.FindOrInsert(
		func(r record) bool { return r.Email == "a@x.com" },
		record{ID: "1", Email: "a@x.com", CreatedAt: time.Now()},
	)
	assert.True(t, inserted)

	second, inserted := col.FindOrInsert(
		func(r record) bool { return r.Email == "a@x.com" },
		record{ID: "2", Email: "a@x.com", CreatedAt: time.Now()},
	)
	assert.False(t, inserted)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, col.Len())
}

func TestCollection_FindOrInsertConcurrent(t *testing.T) {
	col := newCollection()

	const attempts = 50

	results := make([]record, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rec, _ := col.FindOrInsert(
				func(r record) bool { return r.Email == "a@x.com" },
				record{ID: strconv.Itoa(i), Email: "a@x.com", CreatedAt: time.Now()},
			)
			results[i] = rec
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, col.Len())

	for _, rec := range results {
		assert.Equal(t, results[0].ID, rec.ID)
	}
}

func TestCollection_Count(t *testing.T) {
	col := newCollection()
	col.Insert(record{ID: "a", Email: "a@x.com", CreatedAt: time.Now()})
	col.Insert(record{ID: "b", Email: "b@x.com", CreatedAt: time.Now()})
	col.Insert(record{ID: "c", Email: "a@x.com", CreatedAt: time.Now()})

	assert.Equal(t, 2, col.Count(func(r record) bool { return r.Email == "a@x.com" }))
	assert.Equal(t, 3, col.Len())
}
