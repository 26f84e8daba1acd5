package handlers

import (
	"net/http"

	"barcode-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body shape of the original API: a single
// human-readable "detail" field.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

// RespondDomainError maps domain errors to transport status codes. op names
// the operation for 500 messages ("QR generation", "Barcode generation",
// "Vehicle QR generation"). Nothing propagates as an unhandled fault: an
// unclassified error still becomes a 500 in the same taxonomy.
func RespondDomainError(c *gin.Context, op string, err error) {
	switch {
	case domain.IsValidation(err):
		respondDetail(c, http.StatusBadRequest, err.Error())
	case domain.IsEncoding(err):
		logger().Warnw(op+" failed", "request_id", requestID(c), "error", err)
		respondDetail(c, http.StatusInternalServerError, op+" failed: "+err.Error())
	default:
		logger().Errorw(op+" failed unexpectedly", "request_id", requestID(c), "error", err)
		respondDetail(c, http.StatusInternalServerError, op+" failed: "+err.Error())
	}
}
