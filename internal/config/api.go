package config

// API metadata embedded in vehicle QR payloads and the health endpoint.
const (
	APITitle   = "Barcode Generate API"
	APIVersion = "1.0.0"
)
