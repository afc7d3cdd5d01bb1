package handler

import (
	"RoastMe/internal/modules/status/application/dto/request"
	"RoastMe/internal/modules/status/application/service"
	"RoastMe/pkg/back"
	"RoastMe/pkg/xerr"
	"RoastMe/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatusHandler struct {
	svc service.StatusService
}

func NewStatusHandler(svc service.StatusService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	var req request.StatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("bind status request failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.CreateStatusCheck(c.Request.Context(), req)
	back.Result(c, data, err)
}

func (h *StatusHandler) ListStatusChecks(c *gin.Context) {
	data, err := h.svc.ListStatusChecks(c.Request.Context())
	back.Result(c, data, err)
}
