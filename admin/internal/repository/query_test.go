package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_booksBase(t *testing.T) {
	t.Parallel()

	t.Run("no search", func(t *testing.T) {
		t.Parallel()
		query, args, err := booksBase("", "count(*)").ToSql()
		require.NoError(t, err)
		require.NotContains(t, query, "ILIKE")
		require.Empty(t, args)
	})

	t.Run("search filters title, isbn and author", func(t *testing.T) {
		t.Parallel()
		query, args, err := booksBase("go", "count(*)").ToSql()
		require.NoError(t, err)
		require.Contains(t, query, "b.title ILIKE $1")
		require.Contains(t, query, "b.isbn ILIKE $2")
		require.Contains(t, query, "a.author_name ILIKE $3")
		require.Equal(t, []interface{}{"%go%", "%go%", "%go%"}, args)
	})

	t.Run("list and count share the predicate", func(t *testing.T) {
		t.Parallel()
		_, countArgs, err := booksBase("dune", "count(*)").ToSql()
		require.NoError(t, err)
		_, listArgs, err := booksBase("dune", "b.isbn", "b.title").ToSql()
		require.NoError(t, err)
		require.Equal(t, countArgs, listArgs)
	})
}

func Test_ordersBase(t *testing.T) {
	t.Parallel()

	t.Run("no status filter", func(t *testing.T) {
		t.Parallel()
		query, args, err := ordersBase("").ToSql()
		require.NoError(t, err)
		require.NotContains(t, query, "WHERE")
		require.Contains(t, query, "GROUP BY o.order_id")
		require.Contains(t, query, "ORDER BY o.created_at desc")
		require.Empty(t, args)
	})

	t.Run("status filter is exact match", func(t *testing.T) {
		t.Parallel()
		query, args, err := ordersBase("pending").ToSql()
		require.NoError(t, err)
		require.Contains(t, query, "o.payment_status = $1")
		require.Equal(t, []interface{}{"pending"}, args)
	})
}
