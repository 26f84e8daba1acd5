package models

// VehicleRecord carries the vehicle attributes submitted to the vehicle QR
// endpoint. JSON keys match the upstream query parameter names (including
// the historical "varient"/"chasisnum" spellings) so existing scanners keep
// understanding the payload.
type VehicleRecord struct {
	BrandID        string `json:"brandid"`
	VehicleName    string `json:"vehiclename"`
	ModelNumber    string `json:"modelnumber"`
	RegNumber      string `json:"regnumber"`
	VehicleType    string `json:"vehicletype"`
	VehicleSubtype string `json:"vehiclesubtype"`
	Variant        string `json:"varient"`
	Transmission   string `json:"transmission"`
	ChassisNumber  string `json:"chasisnum"`
	EngineNumber   string `json:"enginenumber"`
	Description    string `json:"description"`
}

// Required returns the ten mandatory field values, in declaration order.
// Description is deliberately absent: it is optional and defaults to "".
func (r VehicleRecord) Required() []string {
	return []string{
		r.BrandID,
		r.VehicleName,
		r.ModelNumber,
		r.RegNumber,
		r.VehicleType,
		r.VehicleSubtype,
		r.Variant,
		r.Transmission,
		r.ChassisNumber,
		r.EngineNumber,
	}
}

// SystemInfo identifies the generator inside a vehicle QR payload.
type SystemInfo struct {
	GeneratedBy string `json:"generated_by"`
	Version     string `json:"version"`
}

// VehiclePayload is the structure encoded into the vehicle QR code. Created
// fresh per request, never persisted. Field order here is the key order of
// the serialized JSON.
type VehiclePayload struct {
	ID        string        `json:"id"`
	Timestamp string        `json:"timestamp"`
	Vehicle   VehicleRecord `json:"vehicle"`
	System    SystemInfo    `json:"system"`
}
