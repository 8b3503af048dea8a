package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_LoadItems(t *testing.T) {
	path := writeCSV(t, `id,name,item_type,category,quantity,unit,never_expires,expiration_date,marked_as_enough
i1,Rice,rice,food,2.5,kg,false,2027-01-15,false
i2,Flashlight,flashlight,lighting,2,piece,true,,true
`)

	items, err := NewLoader().LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	rice := items[0]
	assert.Equal(t, "i1", rice.ID)
	assert.Equal(t, entities.ItemTypeID("rice"), rice.ItemType)
	assert.Equal(t, entities.CategoryID("food"), rice.CategoryID)
	assert.Equal(t, entities.Quantity(2.5), rice.Quantity)
	assert.Equal(t, "kg", rice.Unit)
	require.NotNil(t, rice.ExpirationDate)
	assert.Equal(t, time.Date(2027, 1, 15, 0, 0, 0, 0, time.Local), *rice.ExpirationDate)

	flashlight := items[1]
	assert.True(t, flashlight.NeverExpires)
	assert.Nil(t, flashlight.ExpirationDate)
	assert.True(t, flashlight.MarkedAsEnough)
}

func TestLoader_LoadItems_HeaderMismatch(t *testing.T) {
	path := writeCSV(t, `id,name,quantity
i1,Rice,2
`)

	_, err := NewLoader().LoadItems(path)
	assert.ErrorContains(t, err, "header mismatch")
}

func TestLoader_LoadItems_InvalidQuantity(t *testing.T) {
	path := writeCSV(t, `id,name,item_type,category,quantity,unit,never_expires,expiration_date,marked_as_enough
i1,Rice,rice,food,lots,kg,false,,false
`)

	_, err := NewLoader().LoadItems(path)
	assert.ErrorContains(t, err, "row 2")
	assert.ErrorContains(t, err, "invalid quantity")
}

func TestLoader_LoadItems_InvalidDate(t *testing.T) {
	path := writeCSV(t, `id,name,item_type,category,quantity,unit,never_expires,expiration_date,marked_as_enough
i1,Rice,rice,food,2,kg,false,15.01.2027,false
`)

	_, err := NewLoader().LoadItems(path)
	assert.ErrorContains(t, err, "invalid expiration_date")
}

func TestLoader_LoadItems_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadItems(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open")
}

func TestLoader_LoadItems_NoDataRows(t *testing.T) {
	path := writeCSV(t, `id,name,item_type,category,quantity,unit,never_expires,expiration_date,marked_as_enough
`)

	_, err := NewLoader().LoadItems(path)
	assert.ErrorContains(t, err, "at least one data row")
}
