package menu

import "errors"

// MinCatalogItems is the smallest catalog worth opening an order for.
const MinCatalogItems = 2

var ErrNotEnoughItems = errors.New("menu must contain at least 2 items")

func ValidateCatalog(items []string) error {
	if len(items) < MinCatalogItems {
		return ErrNotEnoughItems
	}
	return nil
}
