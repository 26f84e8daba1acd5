package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"barcode-api/internal/domain"
	"barcode-api/internal/encoder"

	"github.com/gin-gonic/gin"
)

// parseEncodeOptions builds encoder options from the shared QR query
// parameters (size, border, version, fill_color, back_color,
// error_correction). Absent parameters keep their defaults; present but
// malformed numerics are rejected before any encoding work.
func parseEncodeOptions(c *gin.Context) (encoder.Options, error) {
	opts := encoder.DefaultOptions()

	if err := intParam(c, "size", &opts.ModuleSize); err != nil {
		return opts, err
	}
	if err := intParam(c, "border", &opts.Border); err != nil {
		return opts, err
	}
	if err := intParam(c, "version", &opts.Version); err != nil {
		return opts, err
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}

	if v := strings.TrimSpace(c.Query("fill_color")); v != "" {
		opts.FillColor = v
	}
	if v := strings.TrimSpace(c.Query("back_color")); v != "" {
		opts.BackColor = v
	}

	// Unrecognized letters fall back to level L; an accepted leniency of
	// the original API, surfaced in the log rather than rejected.
	raw := c.Query("error_correction")
	level, recognized := encoder.ParseRecoveryLevel(raw)
	if raw != "" && !recognized {
		logger().Debugw("unrecognized error_correction, falling back to L",
			"request_id", requestID(c), "value", raw)
	}
	opts.Level = level

	return opts, nil
}

func intParam(c *gin.Context, name string, dst *int) error {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return domain.ValidationError{Field: name, Msg: fmt.Sprintf("%q is not an integer", raw), Err: err}
	}
	*dst = n
	return nil
}
