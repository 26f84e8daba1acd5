package handlers

import (
	"net/http"

	"barcode-api/internal/domain"
	"barcode-api/internal/encoder"
	"barcode-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /qrcode?data=...&size=10&border=4&fill_color=black&back_color=white&version=1&error_correction=L
func GenerateQRCode(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		RespondDomainError(c, "QR generation", domain.ValidationError{Field: "data", Msg: "must not be empty"})
		return
	}

	opts, err := parseEncodeOptions(c)
	if err != nil {
		RespondDomainError(c, "QR generation", err)
		return
	}

	img, err := encoder.QRCodePNG(data, opts)
	if err != nil {
		RespondDomainError(c, "QR generation", err)
		return
	}

	filename := "qrcode_" + utils.SanitizeFilename(data) + ".png"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "image/png", img)
}
