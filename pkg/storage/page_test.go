package storage_test

import (
	"journal/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 30, 0, 123456000, time.UTC)
	page := storage.Page[int]{Items: []int{1}, NextCursor: &ts}

	parsed, err := storage.ParseCursor(page.Cursor())
	require.NoError(t, err)
	require.True(t, ts.Equal(parsed))

	require.Empty(t, storage.Page[int]{}.Cursor())

	zero, err := storage.ParseCursor("")
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = storage.ParseCursor("yesterday")
	require.Error(t, err)
}

func TestPageSize(t *testing.T) {
	require.Equal(t, storage.DefaultPageSize, storage.PageSize(0))
	require.Equal(t, uint(5), storage.PageSize(5))
	require.Equal(t, storage.MaxPageSize, storage.PageSize(1000))
}
