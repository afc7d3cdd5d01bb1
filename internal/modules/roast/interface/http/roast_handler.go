package handler

import (
	"RoastMe/internal/modules/roast/application/dto/request"
	"RoastMe/internal/modules/roast/application/service"
	"RoastMe/pkg/back"
	"RoastMe/pkg/xerr"
	"RoastMe/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const rootMessage = "AI Roast Me API - Ready to serve digital destruction! 🔥"

type RoastHandler struct {
	svc service.RoastService
}

func NewRoastHandler(svc service.RoastService) *RoastHandler {
	return &RoastHandler{svc: svc}
}

func (h *RoastHandler) Root(c *gin.Context) {
	back.Success(c, gin.H{"message": rootMessage})
}

func (h *RoastHandler) CreateRoast(c *gin.Context) {
	var req request.RoastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("bind roast request failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.CreateRoast(c.Request.Context(), req)
	back.Result(c, data, err)
}

func (h *RoastHandler) GetRoast(c *gin.Context) {
	data, err := h.svc.GetRoast(c.Request.Context(), c.Param("roast_id"))
	back.Result(c, data, err)
}

func (h *RoastHandler) GetStats(c *gin.Context) {
	data, err := h.svc.GetStats(c.Request.Context())
	back.Result(c, data, err)
}
