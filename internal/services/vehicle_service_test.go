package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"barcode-api/internal/domain"
	"barcode-api/internal/domain/models"
)

func fullRecord() models.VehicleRecord {
	return models.VehicleRecord{
		BrandID:        "B01",
		VehicleName:    "Falcon",
		ModelNumber:    "F-150",
		RegNumber:      "KA01AB1234",
		VehicleType:    "car",
		VehicleSubtype: "suv",
		Variant:        "LX",
		Transmission:   "manual",
		ChassisNumber:  "CH123456",
		EngineNumber:   "EN654321",
	}
}

func TestComposePayload(t *testing.T) {
	svc := VehicleService{}

	payload, raw, err := svc.ComposePayload(fullRecord())
	if err != nil {
		t.Fatalf("ComposePayload error: %v", err)
	}

	if _, err := uuid.Parse(payload.ID); err != nil {
		t.Fatalf("payload id %q is not a UUID: %v", payload.ID, err)
	}

	ts, err := time.Parse(time.RFC3339, payload.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q is not RFC3339: %v", payload.Timestamp, err)
	}
	if d := time.Since(ts); d < 0 || d > 5*time.Second {
		t.Fatalf("timestamp %q is not recent", payload.Timestamp)
	}

	var decoded models.VehiclePayload
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("serialized payload is not valid JSON: %v", err)
	}
	if decoded.Vehicle != payload.Vehicle {
		t.Fatalf("serialized vehicle does not match payload")
	}
	if decoded.Vehicle.Description != "" {
		t.Fatalf("omitted description should serialize as empty string")
	}
	if decoded.System.GeneratedBy == "" || decoded.System.Version == "" {
		t.Fatalf("system metadata missing: %+v", decoded.System)
	}
}

func TestComposePayloadFreshIdentity(t *testing.T) {
	svc := VehicleService{}

	first, _, err := svc.ComposePayload(fullRecord())
	if err != nil {
		t.Fatalf("first compose error: %v", err)
	}
	second, _, err := svc.ComposePayload(fullRecord())
	if err != nil {
		t.Fatalf("second compose error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be generated per request, got %q twice", first.ID)
	}
}

func TestComposePayloadMissingFields(t *testing.T) {
	clear := []func(*models.VehicleRecord){
		func(r *models.VehicleRecord) { r.BrandID = "" },
		func(r *models.VehicleRecord) { r.VehicleName = "" },
		func(r *models.VehicleRecord) { r.ModelNumber = "" },
		func(r *models.VehicleRecord) { r.RegNumber = "" },
		func(r *models.VehicleRecord) { r.VehicleType = "" },
		func(r *models.VehicleRecord) { r.VehicleSubtype = "" },
		func(r *models.VehicleRecord) { r.Variant = "" },
		func(r *models.VehicleRecord) { r.Transmission = "" },
		func(r *models.VehicleRecord) { r.ChassisNumber = " " },
		func(r *models.VehicleRecord) { r.EngineNumber = "" },
	}

	svc := VehicleService{}
	for i, mutate := range clear {
		rec := fullRecord()
		mutate(&rec)
		_, _, err := svc.ComposePayload(rec)
		if err == nil {
			t.Fatalf("field %d: expected rejection", i)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("field %d: expected ValidationError, got %T: %v", i, err, err)
		}
		if err.Error() != "Missing required vehicle data fields" {
			t.Fatalf("field %d: unexpected message %q", i, err.Error())
		}
	}
}

func TestComposePayloadInjectedClockAndID(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := VehicleService{
		Now:   func() time.Time { return fixed },
		NewID: func() string { return "fixed-id" },
	}

	payload, raw, err := svc.ComposePayload(fullRecord())
	if err != nil {
		t.Fatalf("ComposePayload error: %v", err)
	}
	if payload.ID != "fixed-id" {
		t.Fatalf("unexpected id %q", payload.ID)
	}
	if payload.Timestamp != "2025-06-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp %q", payload.Timestamp)
	}

	// The JSON string is the literal QR payload; composing twice with the
	// same inputs must produce identical bytes.
	_, raw2, err := svc.ComposePayload(fullRecord())
	if err != nil {
		t.Fatalf("second compose error: %v", err)
	}
	if raw != raw2 {
		t.Fatalf("payload serialization is not stable")
	}
}
