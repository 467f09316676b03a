package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(createdAt))
}

func TestDecodeEmptyCursorIsFirstPage(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	params := &CursorParams{Cursor: "!!!not-base64!!!"}
	_, err := params.DecodeCursor()
	require.Error(t, err)
}

func TestCursorParamsValidateClampsLimit(t *testing.T) {
	params := &CursorParams{Limit: 500}
	params.Validate()
	assert.Equal(t, 100, params.Limit)
	assert.Equal(t, CursorDirectionNext, params.Direction)

	params = &CursorParams{Limit: -1, Direction: CursorDirectionPrev}
	params.Validate()
	assert.Equal(t, 15, params.Limit)
	assert.Equal(t, CursorDirectionPrev, params.Direction)
}

func TestNewCursorPaginationTrimsExtraRow(t *testing.T) {
	type row struct {
		id string
		at time.Time
	}
	now := time.Now()
	rows := []row{{"a", now}, {"b", now}, {"c", now}}

	pag, items := NewCursorPagination(rows, 2,
		func(r row) string { return r.id },
		func(r row) time.Time { return r.at })

	assert.Len(t, items, 2)
	assert.True(t, pag.HasNext)
	require.NotNil(t, pag.NextCursor)

	decoded, err := (&CursorParams{Cursor: *pag.NextCursor}).DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", decoded.ID)
}

func TestNewPaginationMetadata(t *testing.T) {
	pag := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := NewPagination(3, 15, 31)
	assert.False(t, last.HasNext)
}

func TestPaginationParamsValidate(t *testing.T) {
	params := &PaginationParams{Page: 0, PerPage: 1000}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PerPage)
	assert.Equal(t, 0, params.Offset())
}
