package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func TestTotalsComputesLineBreakdownAndGrandTotal(t *testing.T) {
	db := newTestDB(t)

	productA := models.Product{Name: "Hoodie", Description: "d", Price: 50, Category: "clothing"}
	productB := models.Product{Name: "Cap", Description: "d", Price: 30, Category: "accessories"}
	require.NoError(t, db.Create(&productA).Error)
	require.NoError(t, db.Create(&productB).Error)

	cart := models.Cart{}
	cart.Add(productA.ID, 2, "Red", "L")
	cart.Add(productB.ID, 1, "", "")

	lines, total, err := Totals(db, cart)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, 130.0, total)
	assert.Equal(t, 100.0, lines[0].Subtotal)
	assert.Equal(t, "Red", lines[0].SelectedColor)
	assert.Equal(t, 30.0, lines[1].Subtotal)
}

func TestTotalsUsesCurrentCatalogPrice(t *testing.T) {
	db := newTestDB(t)

	product := models.Product{Name: "Hoodie", Description: "d", Price: 50, Category: "clothing"}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{}
	cart.Add(product.ID, 1, "", "")

	require.NoError(t, db.Model(&product).Update("price", 75).Error)

	_, total, err := Totals(db, cart)
	require.NoError(t, err)
	assert.Equal(t, 75.0, total)
}

func TestTotalsSilentlySkipsDeletedProducts(t *testing.T) {
	db := newTestDB(t)

	kept := models.Product{Name: "Hoodie", Description: "d", Price: 50, Category: "clothing"}
	doomed := models.Product{Name: "Cap", Description: "d", Price: 30, Category: "accessories"}
	require.NoError(t, db.Create(&kept).Error)
	require.NoError(t, db.Create(&doomed).Error)

	cart := models.Cart{}
	cart.Add(kept.ID, 1, "", "")
	cart.Add(doomed.ID, 3, "", "")

	require.NoError(t, db.Delete(&doomed).Error)

	lines, total, err := Totals(db, cart)
	require.NoError(t, err)

	// The stale entry stays in the cart but is invisible in totals.
	require.Len(t, lines, 1)
	assert.Equal(t, kept.ID, lines[0].ProductID)
	assert.Equal(t, 50.0, total)
	assert.Equal(t, 3, cart.Quantity(doomed.ID))
}

func TestTotalsEmptyCart(t *testing.T) {
	db := newTestDB(t)

	lines, total, err := Totals(db, models.Cart{})
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, total)
}
