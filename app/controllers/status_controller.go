package controllers

import (
	"net/http"

	"github.com/ahmadsvu/stationery-hub-frontend/internal/probe"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ctx"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ws"
)

// StatusController reports backend reachability, both as a one-shot read
// and as a WebSocket stream.
type StatusController struct {
	prober *probe.Prober
	hub    *ws.Hub
}

func NewStatusController(prober *probe.Prober, hub *ws.Hub) *StatusController {
	return &StatusController{prober: prober, hub: hub}
}

// Show returns the latest probe verdict.
func (ctl *StatusController) Show(c *ctx.Context) {
	c.Success(ctl.prober.Last())
}

// Stream upgrades to a WebSocket carrying status updates. The current
// verdict is pushed on connect via the hub's OnConnect hook.
func (ctl *StatusController) Stream(c *ctx.Context) {
	ws.Upgrade(c.W, c.R, ctl.hub)
}

// Healthz is the gateway's own liveness check; it says nothing about the
// remote backend.
func (ctl *StatusController) Healthz(c *ctx.Context) {
	c.String(http.StatusOK, "ok")
}
