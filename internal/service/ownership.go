package service

import (
	"context"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
)

// checkOwnership compares the verified caller stored in ctx by the API key
// gate with the owner of the resource. A missing caller never matches.
func checkOwnership(ctx context.Context, ownerID int64) error {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || callerID != ownerID {
		logger.FromContext(ctx).Warn().
			Str("func", "checkOwnership").
			Int64("caller_id", callerID).
			Int64("owner_id", ownerID).
			Msg("caller does not own the resource")
		return ErrUnauthorizedAccessToDifferentUserData
	}

	return nil
}
