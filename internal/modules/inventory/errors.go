package inventory

import "errors"

var (
	ErrItemNotFound  = errors.New("inventory item not found")
	ErrNameTaken     = errors.New("inventory item name already exists")
	ErrBadAdjustment = errors.New("provide either quantity or delta")
)
