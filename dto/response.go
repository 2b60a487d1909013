package dto

import "errors"

// Custom errors
var (
	ErrPlateRequired = errors.New("placa requerida")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Details   string `json:"detalles,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// BusyResponse is returned when another query already holds the browser.
type BusyResponse struct {
	Error   string `json:"error"`
	Message string `json:"mensaje"`
	State   string `json:"estado"`
}

// ConsultaMetadata describes how a query was executed.
type ConsultaMetadata struct {
	ProxyUsed string `json:"proxyUsado"`
	EmailUsed string `json:"emailUsado"`
	Version   string `json:"version"`
	QueryID   string `json:"idConsulta"`
}

// ConsultaResponse is the final JSON document of a plate query
type ConsultaResponse struct {
	QueryResult
	Elapsed   string           `json:"tiempoConsulta"`
	QueriedAt string           `json:"consultadoEn"`
	Metadata  ConsultaMetadata `json:"metadata"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Proxy      string `json:"proxy"`
	Processing bool   `json:"procesando"`
	Queue      int64  `json:"cola"`
	Service    string `json:"service"`
}
