package handler

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/edocta/consulta-vehicular/dto"
)

const busyMessage = "El sistema está procesando otra consulta. Intente nuevamente en unos momentos."

// Gate admits at most one portal query at a time. Callers that find it busy
// are turned away instead of queued.
type Gate struct {
	busy    atomic.Bool
	pending atomic.Int64
}

func NewGate() *Gate {
	return &Gate{}
}

// TryAcquire takes the gate if it is free.
func (g *Gate) TryAcquire() bool {
	g.pending.Add(1)
	if !g.busy.CompareAndSwap(false, true) {
		g.pending.Add(-1)
		return false
	}
	return true
}

// Release frees the gate. It must be called exactly once per successful TryAcquire.
func (g *Gate) Release() {
	g.busy.Store(false)
	g.pending.Add(-1)
}

func (g *Gate) Busy() bool {
	return g.busy.Load()
}

// Pending is the number of admitted requests still running.
func (g *Gate) Pending() int64 {
	return g.pending.Load()
}

// SingleFlight rejects a request with 429 while another one holds the gate.
func SingleFlight(g *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.TryAcquire() {
			slog.Warn("request rejected, query in progress", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.BusyResponse{
				Error:   "sin respuesta",
				Message: busyMessage,
				State:   "ocupado",
			})
			return
		}
		defer func() {
			g.Release()
			slog.Debug("gate released")
		}()

		c.Next()
	}
}
