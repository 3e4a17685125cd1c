package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether err is GORM's empty-result sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
