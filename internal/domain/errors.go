package domain

import "errors"

var (
	ErrInvalidPayload     = errors.New("invalid petpooja payload")
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingCredentials = errors.New("petpooja credentials are not configured for restaurant")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrVendorRejected     = errors.New("petpooja rejected request")
)
