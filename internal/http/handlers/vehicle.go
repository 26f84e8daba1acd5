package handlers

import (
	"encoding/base64"
	"net/http"

	"barcode-api/internal/config"
	"barcode-api/internal/domain/models"
	"barcode-api/internal/encoder"
	"barcode-api/internal/services"
	"barcode-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// VehicleQRResponse is the composite response of the vehicle endpoint. The
// original API tried to nest a raw image stream inside a JSON object; here
// the PNG travels base64-encoded so the envelope stays one consumable JSON
// document.
type VehicleQRResponse struct {
	Filename    string               `json:"filename"`
	ImageBase64 string               `json:"image_base64"`
	QRPayload   string               `json:"qr_payload"`
	Vehicle     models.VehicleRecord `json:"vehicle"`
	GeneratedAt string               `json:"generated_at"`
	APIVersion  string               `json:"api_version"`
}

// POST /qrcode/vehicle?brandid=...&vehiclename=...&... (all params in query)
func GenerateVehicleQRCode(c *gin.Context) {
	rec := models.VehicleRecord{
		BrandID:        c.Query("brandid"),
		VehicleName:    c.Query("vehiclename"),
		ModelNumber:    c.Query("modelnumber"),
		RegNumber:      c.Query("regnumber"),
		VehicleType:    c.Query("vehicletype"),
		VehicleSubtype: c.Query("vehiclesubtype"),
		Variant:        c.Query("varient"),
		Transmission:   c.Query("transmission"),
		ChassisNumber:  c.Query("chasisnum"),
		EngineNumber:   c.Query("enginenumber"),
		Description:    c.Query("description"),
	}

	svc := services.VehicleService{}
	payload, raw, err := svc.ComposePayload(rec)
	if err != nil {
		RespondDomainError(c, "Vehicle QR generation", err)
		return
	}

	opts, err := parseEncodeOptions(c)
	if err != nil {
		RespondDomainError(c, "Vehicle QR generation", err)
		return
	}

	img, err := encoder.QRCodePNG(raw, opts)
	if err != nil {
		RespondDomainError(c, "Vehicle QR generation", err)
		return
	}

	filename := "vehicle_qr_" + utils.SanitizeFilename(rec.RegNumber) + ".png"
	c.JSON(http.StatusOK, VehicleQRResponse{
		Filename:    filename,
		ImageBase64: base64.StdEncoding.EncodeToString(img),
		QRPayload:   raw,
		Vehicle:     payload.Vehicle,
		GeneratedAt: payload.Timestamp,
		APIVersion:  config.APIVersion,
	})
}
