// Package types holds the JSON shapes shared by the HTTP routes and the
// HTTP data service client.
package types

import "encoding/json"

// Envelope wraps every HTTP response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RawEnvelope is Envelope with the payload left undecoded.
type RawEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
