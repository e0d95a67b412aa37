package internal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogStore(t *testing.T) (*LogStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requests.log")
	store, err := OpenLogStore(path)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store, path
}

func TestLogStoreAppendAndReadAll(t *testing.T) {
	store, _ := newTestLogStore(t)

	first := &Submission{
		Name:      "Somchai",
		Phone:     "0891234567",
		Address:   "123 Mu 4",
		Message:   "Road is damaged",
		Latitude:  "12.616000",
		Longitude: "102.104000",
		Files:     []Attachment{},
		CreatedAt: "2025-09-01T08:00:00.000Z",
	}
	second := &Submission{
		Name:      "Malee",
		Phone:     "0812345678",
		Address:   "99 Mu 2",
		Message:   "Street light broken",
		Latitude:  "12.620000",
		Longitude: "102.110000",
		Files: []Attachment{
			{Filename: "1-2-cat.jpg", OriginalName: "cat.jpg", URL: "/uploads/1-2-cat.jpg"},
		},
		CreatedAt: "2025-09-01T09:00:00.000Z",
	}

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	subs, skipped, err := store.ReadAll()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, subs, 2)
	assert.Equal(t, *first, subs[0])
	assert.Equal(t, *second, subs[1])
}

func TestLogStoreMissingFileReadsEmpty(t *testing.T) {
	store, path := newTestLogStore(t)
	require.NoError(t, os.Remove(path))

	subs, skipped, err := store.ReadAll()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, subs)
	assert.NotNil(t, subs)
}

func TestLogStoreSkipsMalformedLines(t *testing.T) {
	store, path := newTestLogStore(t)

	require.NoError(t, store.Append(&Submission{Name: "A", Files: []Attachment{}}))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("this is not json\n{\"truncated\":\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, store.Append(&Submission{Name: "B", Files: []Attachment{}}))

	subs, skipped, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, subs, 2)
	assert.Equal(t, "A", subs[0].Name)
	assert.Equal(t, "B", subs[1].Name)
}

func TestLogStoreReadAllIsIdempotent(t *testing.T) {
	store, _ := newTestLogStore(t)
	require.NoError(t, store.Append(&Submission{Name: "A", Files: []Attachment{}}))
	require.NoError(t, store.Append(&Submission{Name: "B", Files: []Attachment{}}))

	firstRead, _, err := store.ReadAll()
	require.NoError(t, err)
	secondRead, _, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, firstRead, secondRead)
}

func TestLogStoreConcurrentAppends(t *testing.T) {
	store, _ := newTestLogStore(t)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(&Submission{
				Name:    "citizen",
				Message: "water outage",
				Files:   []Attachment{},
			})
		}()
	}
	wg.Wait()

	subs, skipped, err := store.ReadAll()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Len(t, subs, n)
}
