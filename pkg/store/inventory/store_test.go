package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	require.Error(t, err)
}

func TestGetCostEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "average_unit_cost"}).
		AddRow("Conditioner", 3.25).
		AddRow("Shampoo Deluxe", 4.50)
	mock.ExpectQuery("SELECT name, average_unit_cost").WillReturnRows(rows)

	store, err := NewStore(db)
	require.NoError(t, err)

	entries, err := store.GetCostEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Conditioner", entries[0].ItemName)
	assert.Equal(t, 3.25, entries[0].AverageUnitCost)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCostEntries_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, average_unit_cost").
		WillReturnError(errors.New("table missing"))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.GetCostEntries(context.Background())
	assert.Error(t, err)
}

func TestGetCategoryMapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"item_name", "category"}).
		AddRow("Haircut", "Services").
		AddRow("Shampoo", "Retail").
		AddRow("Conditioner", "Retail")
	mock.ExpectQuery("SELECT item_name, category").WillReturnRows(rows)

	store, err := NewStore(db)
	require.NoError(t, err)

	mapping, err := store.GetCategoryMapping(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Services", mapping.ItemCategory["Haircut"])
	assert.Equal(t, "Retail", mapping.ItemCategory["Shampoo"])
	// Categories are distinct, in first-seen order.
	assert.Equal(t, []string{"Services", "Retail"}, mapping.Categories)

	assert.NoError(t, mock.ExpectationsWereMet())
}
