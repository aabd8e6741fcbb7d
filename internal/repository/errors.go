package repository

import (
	"errors"
	"fmt"
	"net"

	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"gorm.io/gorm"
)

// storageErr translates connection-class failures into
// apperror.ErrStorageUnavailable so callers can tell a transient outage
// apart from a terminal error. Domain sentinels and record-level errors
// pass through unchanged.
func storageErr(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, gorm.ErrInvalidDB) {
		return fmt.Errorf("%w: %v", apperror.ErrStorageUnavailable, err)
	}

	return err
}
