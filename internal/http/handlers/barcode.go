package handlers

import (
	"net/http"

	"barcode-api/internal/domain"
	"barcode-api/internal/encoder"
	"barcode-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /barcode?id=1234
func GenerateBarcode(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		RespondDomainError(c, "Barcode generation", domain.ValidationError{Field: "id", Msg: "must not be empty"})
		return
	}

	img, err := encoder.Code128PNG(id)
	if err != nil {
		RespondDomainError(c, "Barcode generation", err)
		return
	}

	// The raw id goes into the symbol; sanitization is for the filename only.
	filename := "barcode_" + utils.SanitizeFilename(id) + ".png"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "image/png", img)
}
