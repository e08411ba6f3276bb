package inventory

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"meditrack/app/models"
	"meditrack/core/app/search"
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/types"
)

const (
	CreateInventoryEvent   = "inventory.create"
	UpdateInventoryEvent   = "inventory.update"
	DeleteInventoryEvent   = "inventory.delete"
	ArchiveInventoryEvent  = "inventory.archive"
	RestoreInventoryEvent  = "inventory.restore"
	LowStockInventoryEvent = "inventory.low_stock"
)

type InventoryService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Logger  logger.Logger
}

func NewInventoryService(db *gorm.DB, emitter *emitter.Emitter, logger logger.Logger) *InventoryService {
	return &InventoryService{
		DB:      db,
		Emitter: emitter,
		Logger:  logger,
	}
}

// Create stores a new inventory item
func (s *InventoryService) Create(req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	item := models.InventoryItem{
		Code:              req.Code,
		GenericName:       req.GenericName,
		BrandName:         req.BrandName,
		Category:          req.Category,
		Classification:    req.Classification,
		Department:        req.Department,
		StockQuantity:     req.StockQuantity,
		Unit:              req.Unit,
		MinimumStockLevel: req.MinimumStockLevel,
		MaximumStockLevel: req.MaximumStockLevel,
		ExpirationDate:    req.ExpirationDate,
		Status:            models.InventoryStatusActive,
		Notes:             req.Notes,
	}
	item.Status = s.deriveStatus(&item)

	if err := s.DB.Create(&item).Error; err != nil {
		s.Logger.Error("failed to create inventory item", logger.String("error", err.Error()))
		return nil, err
	}

	s.Emitter.Emit(CreateInventoryEvent, &item)
	if item.IsLowStock() {
		s.Emitter.Emit(LowStockInventoryEvent, &item)
	}
	return &item, nil
}

// GetById returns an inventory item by id
func (s *InventoryService) GetById(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAll returns active items paginated with optional filters
func (s *InventoryService) GetAll(page, limit int, searchTerm, department, classification, status, sortBy, sortDesc string) (*types.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.DB.Model(&models.InventoryItem{}).
		Where("status != ?", models.InventoryStatusArchived)

	if searchTerm != "" {
		term := "%" + searchTerm + "%"
		query = query.Where(
			"generic_name LIKE ? OR brand_name LIKE ? OR code LIKE ? OR category LIKE ?",
			term, term, term, term)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if classification != "" {
		query = query.Where("classification = ?", classification)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count inventory items", logger.String("error", err.Error()))
		return nil, err
	}

	query = s.applySorting(query, sortBy, sortDesc)

	var items []*models.InventoryItem
	err := query.Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	if err != nil {
		s.Logger.Error("failed to fetch inventory items", logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*models.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ToResponse())
	}

	return &types.PaginatedResponse{
		Data: responses,
		Pagination: types.Pagination{
			Total:      total,
			Page:       page,
			PageSize:   limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// Update applies the request to an existing item
func (s *InventoryService) Update(id uint, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.GetById(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Code != "" {
		updates["code"] = req.Code
	}
	if req.GenericName != "" {
		updates["generic_name"] = req.GenericName
	}
	if req.BrandName != "" {
		updates["brand_name"] = req.BrandName
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Classification != "" {
		updates["classification"] = req.Classification
	}
	if req.Department != "" {
		updates["department"] = req.Department
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.Unit != "" {
		updates["unit"] = req.Unit
	}
	if req.MinimumStockLevel != nil {
		updates["minimum_stock_level"] = *req.MinimumStockLevel
	}
	if req.MaximumStockLevel != nil {
		updates["maximum_stock_level"] = *req.MaximumStockLevel
	}
	if req.ExpirationDate != nil {
		updates["expiration_date"] = req.ExpirationDate
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.DB.Model(item).Updates(updates).Error; err != nil {
			s.Logger.Error("failed to update inventory item",
				logger.Uint("item_id", id),
				logger.String("error", err.Error()))
			return nil, err
		}
	}

	updated, err := s.GetById(id)
	if err != nil {
		return nil, err
	}

	if req.Status == "" {
		derived := s.deriveStatus(updated)
		if derived != updated.Status {
			if err := s.DB.Model(updated).Update("status", derived).Error; err != nil {
				return nil, err
			}
			updated.Status = derived
		}
	}

	s.Emitter.Emit(UpdateInventoryEvent, updated)
	if updated.IsLowStock() {
		s.Emitter.Emit(LowStockInventoryEvent, updated)
	}
	return updated, nil
}

// Archive moves an item out of the active inventory
func (s *InventoryService) Archive(id uint) (*models.InventoryItem, error) {
	item, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	if item.Status == models.InventoryStatusArchived {
		return nil, errors.New("item is already archived")
	}

	if err := s.DB.Model(item).Update("status", models.InventoryStatusArchived).Error; err != nil {
		s.Logger.Error("failed to archive inventory item",
			logger.Uint("item_id", id),
			logger.String("error", err.Error()))
		return nil, err
	}
	item.Status = models.InventoryStatusArchived

	s.Emitter.Emit(ArchiveInventoryEvent, item)
	return item, nil
}

// Restore brings an archived item back into the active inventory
func (s *InventoryService) Restore(id uint) (*models.InventoryItem, error) {
	item, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	if item.Status != models.InventoryStatusArchived {
		return nil, errors.New("item is not archived")
	}

	item.Status = models.InventoryStatusActive
	status := s.deriveStatus(item)
	if err := s.DB.Model(item).Update("status", status).Error; err != nil {
		s.Logger.Error("failed to restore inventory item",
			logger.Uint("item_id", id),
			logger.String("error", err.Error()))
		return nil, err
	}
	item.Status = status

	s.Emitter.Emit(RestoreInventoryEvent, item)
	return item, nil
}

// Delete soft-deletes an item
func (s *InventoryService) Delete(id uint) error {
	item, err := s.GetById(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(item).Error; err != nil {
		s.Logger.Error("failed to delete inventory item",
			logger.Uint("item_id", id),
			logger.String("error", err.Error()))
		return err
	}
	s.Emitter.Emit(DeleteInventoryEvent, item)
	return nil
}

// GetArchived returns archived items, most recently updated first
func (s *InventoryService) GetArchived() ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	err := s.DB.Where("status = ?", models.InventoryStatusArchived).
		Order("updated_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetLowStock returns active items at or below their minimum stock level
func (s *InventoryService) GetLowStock() ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	err := s.DB.
		Where("status != ?", models.InventoryStatusArchived).
		Where("minimum_stock_level > 0 AND stock_quantity <= minimum_stock_level").
		Order("stock_quantity ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetStatusSummary returns item counts per status
func (s *InventoryService) GetStatusSummary() ([]types.ChartPoint, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := s.DB.Model(&models.InventoryItem{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		s.Logger.Error("failed to fetch inventory summary", logger.String("error", err.Error()))
		return nil, err
	}

	points := make([]types.ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, types.ChartPoint{
			Name:  strings.ReplaceAll(row.Status, "_", " "),
			Value: row.Count,
		})
	}
	return points, nil
}

// GetClassifications returns the classification reference rows
func (s *InventoryService) GetClassifications() ([]*models.InventoryClassification, error) {
	var classifications []*models.InventoryClassification
	if err := s.DB.Order("name ASC").Find(&classifications).Error; err != nil {
		return nil, err
	}
	return classifications, nil
}

// GetAllItems implements the search source over active inventory
func (s *InventoryService) GetAllItems(page, pageSize int) ([]search.InventoryRecord, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	var items []*models.InventoryItem
	err := s.DB.Where("status != ?", models.InventoryStatusArchived).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	records := make([]search.InventoryRecord, 0, len(items))
	for _, item := range items {
		records = append(records, search.InventoryRecord{
			Id:             item.Id,
			Code:           item.Code,
			Name:           item.DisplayName(),
			BrandName:      item.BrandName,
			Category:       item.Category,
			Classification: item.Classification,
			Department:     item.Department,
			StockQuantity:  item.StockQuantity,
			Unit:           item.Unit,
			Status:         item.Status,
		})
	}
	return records, nil
}

// GetArchivedItems implements the search source over archived inventory
func (s *InventoryService) GetArchivedItems() ([]search.ArchiveRecord, error) {
	items, err := s.GetArchived()
	if err != nil {
		return nil, err
	}

	records := make([]search.ArchiveRecord, 0, len(items))
	for _, item := range items {
		records = append(records, search.ArchiveRecord{
			Id:         item.Id,
			Name:       item.DisplayName(),
			Category:   item.Category,
			Department: item.Department,
			ArchivedAt: item.UpdatedAt,
		})
	}
	return records, nil
}

// deriveStatus computes the stock-driven status for an item
func (s *InventoryService) deriveStatus(item *models.InventoryItem) string {
	if item.Status == models.InventoryStatusArchived {
		return item.Status
	}
	if item.ExpirationDate != nil && item.ExpirationDate.Before(time.Now()) {
		return models.InventoryStatusExpired
	}
	if item.StockQuantity <= 0 {
		return models.InventoryStatusOutOfStock
	}
	if item.IsLowStock() {
		return models.InventoryStatusLowStock
	}
	return models.InventoryStatusActive
}

func (s *InventoryService) applySorting(query *gorm.DB, sortBy, sortDesc string) *gorm.DB {
	validSortFields := map[string]bool{
		"id":              true,
		"code":            true,
		"generic_name":    true,
		"brand_name":      true,
		"category":        true,
		"classification":  true,
		"department":      true,
		"stock_quantity":  true,
		"expiration_date": true,
		"status":          true,
		"created_at":      true,
		"updated_at":      true,
	}

	if sortBy == "" || !validSortFields[sortBy] {
		sortBy = "id"
	}

	direction := "ASC"
	if strings.EqualFold(sortDesc, "true") || strings.EqualFold(sortDesc, "desc") {
		direction = "DESC"
	}

	return query.Order(fmt.Sprintf("%s %s", sortBy, direction))
}
