package archives

import (
	"meditrack/app/inventory"
	"meditrack/app/models"
	"meditrack/core/logger"
	"meditrack/core/types"
)

// ArchivedItemResponse decorates an inventory response with its archive date
type ArchivedItemResponse struct {
	*models.InventoryItemResponse
	ArchivedAt string `json:"archived_at"`
}

// ArchiveService exposes the archived slice of the inventory
type ArchiveService struct {
	Inventory *inventory.InventoryService
	Logger    logger.Logger
}

func NewArchiveService(inventoryService *inventory.InventoryService, log logger.Logger) *ArchiveService {
	return &ArchiveService{
		Inventory: inventoryService,
		Logger:    log,
	}
}

// GetAll returns every archived item, most recently archived first
func (s *ArchiveService) GetAll() ([]*ArchivedItemResponse, error) {
	items, err := s.Inventory.GetArchived()
	if err != nil {
		s.Logger.Error("failed to fetch archived items", logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*ArchivedItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &ArchivedItemResponse{
			InventoryItemResponse: item.ToResponse(),
			ArchivedAt:            item.UpdatedAt.Format("2006-01-02"),
		})
	}
	return responses, nil
}

// Restore delegates to the inventory service
func (s *ArchiveService) Restore(id uint) (*models.InventoryItem, error) {
	return s.Inventory.Restore(id)
}

// GetSummary returns archived item counts per classification
func (s *ArchiveService) GetSummary() ([]types.ChartPoint, error) {
	items, err := s.Inventory.GetArchived()
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	var order []string
	for _, item := range items {
		classification := item.Classification
		if classification == "" {
			classification = "Unclassified"
		}
		if _, seen := counts[classification]; !seen {
			order = append(order, classification)
		}
		counts[classification]++
	}

	points := make([]types.ChartPoint, 0, len(order))
	for _, classification := range order {
		points = append(points, types.ChartPoint{Name: classification, Value: counts[classification]})
	}
	return points, nil
}
