package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"event_type_id": 7}).
		Where(squirrel.Lt{"start_time": "b"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE event_type_id = $1 AND start_time < $2", query)
	assert.Equal(t, []interface{}{7, "b"}, args)
}

func TestDelete(t *testing.T) {
	query, args, err := Delete("bookings").Where(squirrel.Eq{"id": int64(3)}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookings WHERE id = $1", query)
	assert.Equal(t, []interface{}{int64(3)}, args)
}
