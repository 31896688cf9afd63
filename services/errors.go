package services

import "errors"

// Failure taxonomy shared by services and controllers. Controllers map these
// onto HTTP statuses; anything else is treated as a store failure (500).
var (
	ErrInvalidArgument      = errors.New("invalid identifier")
	ErrMissingFile          = errors.New("no image file provided")
	ErrUnsupportedMediaType = errors.New("only image files are allowed")
	ErrPayloadTooLarge      = errors.New("image exceeds the 5MB size limit")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrImageNotFound        = errors.New("image not found")
)
