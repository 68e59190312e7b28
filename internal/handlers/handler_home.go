package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello World From FX Backend API v1"})
}

// getHealth reports liveness plus the currency context lifecycle state. The
// process is healthy as soon as it serves; readiness of the context is a
// separate field so load balancers can tell the two apart.
func getHealth(contextService portssvc.ContextSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := contextService.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
			"state":  string(snap.State),
		})
	}
}
