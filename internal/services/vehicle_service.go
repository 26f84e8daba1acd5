package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"barcode-api/internal/config"
	"barcode-api/internal/domain"
	"barcode-api/internal/domain/models"
)

// VehicleService composes the JSON payload encoded into vehicle QR codes.
// Now and NewID are injectable for tests; nil means the real clock and a
// random UUID.
type VehicleService struct {
	Now   func() time.Time
	NewID func() string
}

// ComposePayload checks that every required vehicle field is present and
// returns the payload together with its serialized JSON form. The JSON
// string is what gets encoded into the QR symbol, so it is produced exactly
// once here; key order follows struct declaration order and is stable.
func (s VehicleService) ComposePayload(rec models.VehicleRecord) (models.VehiclePayload, string, error) {
	for _, v := range rec.Required() {
		if strings.TrimSpace(v) == "" {
			return models.VehiclePayload{}, "", domain.ValidationError{Msg: "Missing required vehicle data fields"}
		}
	}

	payload := models.VehiclePayload{
		ID:        s.newID(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Vehicle:   rec,
		System: models.SystemInfo{
			GeneratedBy: config.APITitle,
			Version:     config.APIVersion,
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return models.VehiclePayload{}, "", domain.InternalError{Msg: "failed to serialize vehicle payload", Err: err}
	}

	return payload, string(raw), nil
}

func (s VehicleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s VehicleService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
