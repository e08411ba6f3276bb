package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Inventory item statuses
const (
	InventoryStatusActive     = "active"
	InventoryStatusLowStock   = "low_stock"
	InventoryStatusOutOfStock = "out_of_stock"
	InventoryStatusExpired    = "expired"
	InventoryStatusArchived   = "archived"
)

// InventoryItem represents a medical supply, medicine, or equipment record
type InventoryItem struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	Code           string `json:"code" gorm:"column:code;index;size:100"`
	GenericName    string `json:"generic_name" gorm:"column:generic_name;index;size:255"`
	BrandName      string `json:"brand_name" gorm:"column:brand_name;size:255"`
	Category       string `json:"category" gorm:"column:category;size:100"`
	Classification string `json:"classification" gorm:"column:classification;index;size:100"` // Medicines, Supplies, Equipment
	Department     string `json:"department" gorm:"column:department;index;size:100"`         // medical, dental

	StockQuantity     int    `json:"stock_quantity" gorm:"column:stock_quantity"`
	Unit              string `json:"unit" gorm:"column:unit;size:50"`
	MinimumStockLevel int    `json:"minimum_stock_level" gorm:"column:minimum_stock_level"`
	MaximumStockLevel int    `json:"maximum_stock_level" gorm:"column:maximum_stock_level"`

	ExpirationDate *time.Time `json:"expiration_date,omitempty" gorm:"column:expiration_date"`
	Status         string     `json:"status" gorm:"column:status;index;size:50;default:active"`
	Notes          string     `json:"notes" gorm:"column:notes;type:text"`
}

// TableName returns the table name for the InventoryItem model
func (m *InventoryItem) TableName() string {
	return "inventory_items"
}

// GetId returns the Id of the model
func (m *InventoryItem) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *InventoryItem) GetModelName() string {
	return "inventory_item"
}

// DisplayName returns the best available display string for the item
func (m *InventoryItem) DisplayName() string {
	if m.GenericName != "" {
		return m.GenericName
	}
	if m.BrandName != "" {
		return m.BrandName
	}
	return "Unknown Item"
}

// IsLowStock reports whether the item is at or below its minimum stock level
func (m *InventoryItem) IsLowStock() bool {
	return m.MinimumStockLevel > 0 && m.StockQuantity <= m.MinimumStockLevel
}

// CreateInventoryItemRequest represents the request payload for creating an InventoryItem
type CreateInventoryItemRequest struct {
	Code              string     `json:"code" binding:"max=100"`
	GenericName       string     `json:"generic_name" binding:"required,max=255"`
	BrandName         string     `json:"brand_name" binding:"max=255"`
	Category          string     `json:"category" binding:"max=100"`
	Classification    string     `json:"classification" binding:"required,max=100"`
	Department        string     `json:"department" binding:"required,max=100"`
	StockQuantity     int        `json:"stock_quantity" binding:"min=0"`
	Unit              string     `json:"unit" binding:"max=50"`
	MinimumStockLevel int        `json:"minimum_stock_level" binding:"min=0"`
	MaximumStockLevel int        `json:"maximum_stock_level" binding:"min=0"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	Notes             string     `json:"notes"`
}

// UpdateInventoryItemRequest represents the request payload for updating an InventoryItem
type UpdateInventoryItemRequest struct {
	Code              string     `json:"code,omitempty" binding:"max=100"`
	GenericName       string     `json:"generic_name,omitempty" binding:"max=255"`
	BrandName         string     `json:"brand_name,omitempty" binding:"max=255"`
	Category          string     `json:"category,omitempty" binding:"max=100"`
	Classification    string     `json:"classification,omitempty" binding:"max=100"`
	Department        string     `json:"department,omitempty" binding:"max=100"`
	StockQuantity     *int       `json:"stock_quantity,omitempty"`
	Unit              string     `json:"unit,omitempty" binding:"max=50"`
	MinimumStockLevel *int       `json:"minimum_stock_level,omitempty"`
	MaximumStockLevel *int       `json:"maximum_stock_level,omitempty"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	Status            string     `json:"status,omitempty" binding:"max=50"`
	Notes             *string    `json:"notes,omitempty"`
}

// InventoryItemResponse represents the API response for InventoryItem
type InventoryItemResponse struct {
	Id                uint       `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Code              string     `json:"code"`
	GenericName       string     `json:"generic_name"`
	BrandName         string     `json:"brand_name"`
	Category          string     `json:"category"`
	Classification    string     `json:"classification"`
	Department        string     `json:"department"`
	StockQuantity     int        `json:"stock_quantity"`
	Unit              string     `json:"unit"`
	MinimumStockLevel int        `json:"minimum_stock_level"`
	MaximumStockLevel int        `json:"maximum_stock_level"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes"`
	LowStock          bool       `json:"low_stock"`
}

// InventoryItemSelectOption represents a simplified response for select boxes and dropdowns
type InventoryItemSelectOption struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts the model to an API response
func (m *InventoryItem) ToResponse() *InventoryItemResponse {
	if m == nil {
		return nil
	}
	return &InventoryItemResponse{
		Id:                m.Id,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		Code:              m.Code,
		GenericName:       m.GenericName,
		BrandName:         m.BrandName,
		Category:          m.Category,
		Classification:    m.Classification,
		Department:        m.Department,
		StockQuantity:     m.StockQuantity,
		Unit:              m.Unit,
		MinimumStockLevel: m.MinimumStockLevel,
		MaximumStockLevel: m.MaximumStockLevel,
		ExpirationDate:    m.ExpirationDate,
		Status:            m.Status,
		Notes:             m.Notes,
		LowStock:          m.IsLowStock(),
	}
}

// ToSelectOption converts the model to a select option for dropdowns
func (m *InventoryItem) ToSelectOption() *InventoryItemSelectOption {
	if m == nil {
		return nil
	}
	name := m.DisplayName()
	if m.Code != "" {
		name = m.Code + " - " + name
	}
	return &InventoryItemSelectOption{
		Id:   m.Id,
		Name: name,
	}
}

// StatusLabel returns the status with underscores replaced for display
func (m *InventoryItem) StatusLabel() string {
	return strings.ReplaceAll(m.Status, "_", " ")
}

// InventoryClassification is a reference row for item classifications
type InventoryClassification struct {
	Id   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"column:name;unique;size:100"`
}

// TableName returns the table name for the InventoryClassification model
func (m *InventoryClassification) TableName() string {
	return "inventory_classifications"
}
