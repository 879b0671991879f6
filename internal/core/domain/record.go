package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MedicalRecord is one row per user. Allergies, ChronicDiseases and
// EmergencyContactPhone hold ciphertext at rest; the service layer decrypts
// them only while assembling a read response. EmergencyContactName is stored
// in plaintext.
type MedicalRecord struct {
	UserID                string `json:"user_id"`
	BloodType             string `json:"blood_type"`
	Height                Float  `json:"height"`
	InitialWeight         Float  `json:"initial_weight"`
	CurrentWeight         Float  `json:"current_weight"`
	Allergies             string `json:"allergies"`
	ChronicDiseases       string `json:"chronic_diseases"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// Float is a float64 that tolerates sloppy JSON input: numbers, numeric
// strings, null, and garbage all decode without error, with anything
// unparseable coerced to 0. This mirrors the historical ingestion contract
// where malformed numeric input is zeroed rather than rejected.
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = Float(v)
	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}
