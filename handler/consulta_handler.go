package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edocta/consulta-vehicular/config"
	"github.com/edocta/consulta-vehicular/dto"
)

const (
	serviceName    = "consulta-vehicular-api-v3"
	queryFailed    = "Error en la consulta"
	queryChecklist = "Verifique: 1. Conexión a internet, 2. Proxy disponible, 3. Placa correcta"
)

// Querier runs a plate query end to end
type Querier interface {
	Consultar(ctx context.Context, plate string) (*dto.ConsultaResponse, error)
}

type ConsultaHandler struct {
	querier Querier
	gate    *Gate
	cfg     *config.Config
}

func NewConsultaHandler(querier Querier, gate *Gate, cfg *config.Config) *ConsultaHandler {
	return &ConsultaHandler{
		querier: querier,
		gate:    gate,
		cfg:     cfg,
	}
}

// GetConsulta handles GET /consulta?placa=
func (h *ConsultaHandler) GetConsulta(c *gin.Context) {
	var req dto.ConsultaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Placa requerida. Ejemplo: /consulta?placa=ABC123", err)
		return
	}
	h.consultJSON(c, req)
}

// PostConsulta handles POST /consulta with a JSON body
func (h *ConsultaHandler) PostConsulta(c *gin.Context) {
	var req dto.ConsultaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Placa requerida en el cuerpo de la solicitud", err)
		return
	}
	h.consultJSON(c, req)
}

func (h *ConsultaHandler) consultJSON(c *gin.Context, req dto.ConsultaRequest) {
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "Placa requerida", err)
		return
	}

	resp, err := h.querier.Consultar(c.Request.Context(), req.Plate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     queryFailed,
			Message:   err.Error(),
			Details:   queryChecklist,
			Timestamp: now(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConsoleConsulta handles GET /consulta-consola/:placa with a plain-text report
func (h *ConsultaHandler) ConsoleConsulta(c *gin.Context) {
	req := dto.ConsultaRequest{Plate: c.Param("placa")}
	if err := req.Validate(); err != nil {
		c.String(http.StatusBadRequest, "Error: Placa requerida\n")
		return
	}

	resp, err := h.querier.Consultar(c.Request.Context(), req.Plate)
	if err != nil {
		c.String(http.StatusInternalServerError,
			"Error en la consulta. Verifique:\n1. Conexión a internet\n2. Proxy disponible\n3. Placa correcta\nDetalle del error: %s\n",
			err.Error())
		return
	}

	c.String(http.StatusOK, "%s", FormatConsole(resp))
}

// HTMLConsulta handles GET /consulta-html/:placa
func (h *ConsultaHandler) HTMLConsulta(c *gin.Context) {
	req := dto.ConsultaRequest{Plate: c.Param("placa")}
	if err := req.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, errorTemplateName, gin.H{
			"Title":   "Error: Placa requerida",
			"Message": "Indique la placa en la ruta, por ejemplo /consulta-html/ABC123.",
		})
		return
	}

	resp, err := h.querier.Consultar(c.Request.Context(), req.Plate)
	if err != nil {
		c.HTML(http.StatusInternalServerError, errorTemplateName, gin.H{
			"Title":   queryFailed,
			"Message": "Verifique la placa e intente nuevamente.",
		})
		return
	}

	c.HTML(http.StatusOK, reportTemplateName, newReportView(resp))
}

// Info handles GET / with a description of the service
func (h *ConsultaHandler) Info(c *gin.Context) {
	state := "disponible"
	if h.gate.Busy() {
		state = "procesando"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "API de consulta de estado de cuenta vehicular - Versión Completa",
		"status":  "online",
		"version": config.Version,
		"caracteristicas": []string{
			"Esperas inteligentes por elemento",
			"Extracción de subsidios y donativos",
			"Búsqueda avanzada de patrones",
			"Estructura de datos mejorada",
		},
		"nuevos_campos": []string{
			"subsidiosYdonativos.subsidioRefrendoProntoPago",
			"subsidiosYdonativos.donativoCruzRoja",
			"subsidiosYdonativos.donativoBomberos",
			"resumenFinanciero.desglose",
		},
		"proxy":                   h.cfg.ProxyLabel(),
		"solicitudes_simultaneas": "1 máximo",
		"estado_actual":           state,
		"cola":                    h.gate.Pending(),
		"endpoints": gin.H{
			"consulta":     "GET /consulta?placa=ABC123",
			"consultaPost": `POST /consulta con JSON body { "placa": "ABC123" }`,
			"health":       "GET /health",
			"consola":      "GET /consulta-consola/:placa",
			"html":         "GET /consulta-html/:placa",
		},
	})
}

// Health handles GET /health
func (h *ConsultaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "OK",
		Timestamp:  now(),
		Proxy:      h.cfg.ProxyLabel(),
		Processing: h.gate.Busy(),
		Queue:      h.gate.Pending(),
		Service:    serviceName,
	})
}

func (h *ConsultaHandler) sendError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, dto.ErrorResponse{
		Error:     message,
		Message:   err.Error(),
		Timestamp: now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
