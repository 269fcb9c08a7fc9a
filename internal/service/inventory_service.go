package service

import (
	"fmt"

	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/store"
	"go-hardware-pos/internal/ws"
	"go-hardware-pos/pkg/validator"
)

type InventoryService interface {
	GetAllItems() ([]model.InventoryItem, error)
	AddItem(item *model.InventoryItem) error
	UpdateItem(itemCode string, item *model.InventoryItem) error
	DeleteItem(itemCode string) error
}

type inventoryService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewInventoryService(st *store.Store, hub *ws.Hub) InventoryService {
	return &inventoryService{store: st, hub: hub}
}

func (s *inventoryService) GetAllItems() ([]model.InventoryItem, error) {
	return s.store.Inventory()
}

func (s *inventoryService) AddItem(item *model.InventoryItem) error {
	if err := validateRequest(item); err != nil {
		return err
	}

	err := s.store.MutateInventory(func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		if findItem(items, item.ItemCode) >= 0 {
			return nil, &ConflictError{Message: "Item code already exists"}
		}
		return append(items, *item), nil
	})
	if err != nil {
		return err
	}

	s.hub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "item_added",
		"item": map[string]interface{}{
			"item_code": item.ItemCode,
			"item_name": item.ItemName,
			"stock":     item.QuantityInStock,
		},
		"message": fmt.Sprintf("Item '%s' added to inventory", item.ItemName),
	})
	return nil
}

// UpdateItem replaces every mutable field wholesale; there is no
// partial-field patch. The item code in the path wins over the body.
func (s *inventoryService) UpdateItem(itemCode string, item *model.InventoryItem) error {
	if err := validateRequest(item); err != nil {
		return err
	}

	err := s.store.MutateInventory(func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		idx := findItem(items, itemCode)
		if idx < 0 {
			return nil, notFound("Item not found")
		}
		updated := *item
		updated.ItemCode = itemCode
		items[idx] = updated
		return items, nil
	})
	if err != nil {
		return err
	}

	s.hub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "item_updated",
		"item": map[string]interface{}{
			"item_code": itemCode,
			"item_name": item.ItemName,
			"stock":     item.QuantityInStock,
		},
		"message": fmt.Sprintf("Item '%s' updated", item.ItemName),
	})
	return nil
}

func (s *inventoryService) DeleteItem(itemCode string) error {
	err := s.store.MutateInventory(func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		idx := findItem(items, itemCode)
		if idx < 0 {
			return nil, notFound("Item not found")
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
	if err != nil {
		return err
	}

	s.hub.BroadcastJSON(map[string]interface{}{
		"type":    "stock_update",
		"action":  "item_deleted",
		"item":    map[string]interface{}{"item_code": itemCode},
		"message": fmt.Sprintf("Item '%s' removed from inventory", itemCode),
	})
	return nil
}

// findItem returns the index of the item with the given code, or -1.
func findItem(items []model.InventoryItem, code string) int {
	for i := range items {
		if items[i].ItemCode == code {
			return i
		}
	}
	return -1
}

// validateRequest runs struct validation and folds the first failure into
// a ValidationError so handlers answer 400 with a readable message.
func validateRequest(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return &ValidationError{
			Message: fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		}
	}
	return nil
}
