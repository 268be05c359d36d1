package utils

// ValidatePaging enforces the shared page window: page >= 1, size 1..100.
func ValidatePaging(page int, pageSize int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return ErrInvalidPageSize
	}
	return nil
}
