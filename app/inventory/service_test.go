package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"meditrack/app/models"
	"meditrack/core/emitter"
	"meditrack/core/logger"
)

func newTestService(t *testing.T) (*InventoryService, *emitter.Emitter) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.InventoryItem{}, &models.InventoryClassification{}))

	events := emitter.New()
	return NewInventoryService(db, events, logger.NewNopLogger()), events
}

func createItem(t *testing.T, service *InventoryService, req models.CreateInventoryItemRequest) *models.InventoryItem {
	t.Helper()
	item, err := service.Create(&req)
	require.NoError(t, err)
	return item
}

func TestCreateDerivesStatusFromStock(t *testing.T) {
	service, _ := newTestService(t)

	active := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Paracetamol", Classification: "Medicines", Department: "medical",
		StockQuantity: 100, MinimumStockLevel: 10,
	})
	assert.Equal(t, models.InventoryStatusActive, active.Status)

	low := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Gauze", Classification: "Supplies", Department: "medical",
		StockQuantity: 5, MinimumStockLevel: 10,
	})
	assert.Equal(t, models.InventoryStatusLowStock, low.Status)

	out := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Gloves", Classification: "Supplies", Department: "dental",
		StockQuantity: 0,
	})
	assert.Equal(t, models.InventoryStatusOutOfStock, out.Status)
}

func TestCreateEmitsEvents(t *testing.T) {
	service, events := newTestService(t)

	var fired []string
	events.On(CreateInventoryEvent, func(data any) { fired = append(fired, CreateInventoryEvent) })
	events.On(LowStockInventoryEvent, func(data any) { fired = append(fired, LowStockInventoryEvent) })

	createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Gauze", Classification: "Supplies", Department: "medical",
		StockQuantity: 2, MinimumStockLevel: 10,
	})
	assert.Equal(t, []string{CreateInventoryEvent, LowStockInventoryEvent}, fired)
}

func TestArchiveAndRestore(t *testing.T) {
	service, _ := newTestService(t)

	item := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Dental Mirror", Classification: "Equipment", Department: "dental",
		StockQuantity: 3,
	})

	archived, err := service.Archive(item.Id)
	require.NoError(t, err)
	assert.Equal(t, models.InventoryStatusArchived, archived.Status)

	_, err = service.Archive(item.Id)
	assert.Error(t, err, "double archive should fail")

	records, err := service.GetArchivedItems()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dental Mirror", records[0].Name)

	restored, err := service.Restore(item.Id)
	require.NoError(t, err)
	assert.Equal(t, models.InventoryStatusActive, restored.Status)

	records, err = service.GetArchivedItems()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestArchivedItemsExcludedFromListing(t *testing.T) {
	service, _ := newTestService(t)

	keep := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Bandage", Classification: "Supplies", Department: "medical",
		StockQuantity: 50,
	})
	gone := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Old Splint", Classification: "Supplies", Department: "medical",
		StockQuantity: 1,
	})
	_, err := service.Archive(gone.Id)
	require.NoError(t, err)

	page, err := service.GetAll(1, 20, "", "", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)

	records, err := service.GetAllItems(1, 50)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, keep.Id, records[0].Id)
}

func TestGetAllFiltersBySearchTerm(t *testing.T) {
	service, _ := newTestService(t)

	createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Amoxicillin", Classification: "Medicines", Department: "medical",
		StockQuantity: 30,
	})
	createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Gauze Pad", Classification: "Supplies", Department: "medical",
		StockQuantity: 200,
	})

	page, err := service.GetAll(1, 20, "amox", "", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestGetLowStock(t *testing.T) {
	service, _ := newTestService(t)

	createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Plenty", Classification: "Supplies", Department: "medical",
		StockQuantity: 100, MinimumStockLevel: 10,
	})
	createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Scarce", Classification: "Supplies", Department: "medical",
		StockQuantity: 3, MinimumStockLevel: 10,
	})

	items, err := service.GetLowStock()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Scarce", items[0].GenericName)
}

func TestUpdateRederivesStatus(t *testing.T) {
	service, _ := newTestService(t)

	item := createItem(t, service, models.CreateInventoryItemRequest{
		GenericName: "Syringe", Classification: "Supplies", Department: "medical",
		StockQuantity: 50, MinimumStockLevel: 10,
	})

	newStock := 4
	updated, err := service.Update(item.Id, &models.UpdateInventoryItemRequest{StockQuantity: &newStock})
	require.NoError(t, err)
	assert.Equal(t, models.InventoryStatusLowStock, updated.Status)
	assert.Equal(t, 4, updated.StockQuantity)
}
