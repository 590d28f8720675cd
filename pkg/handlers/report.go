package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/service"
)

type ReportHandlers struct {
	service service.ReportServiceInterface
}

func NewReportHandlers(service service.ReportServiceInterface) *ReportHandlers {
	return &ReportHandlers{service: service}
}

// ExportOrders streams the orders report as an xlsx attachment. This is a raw
// gin handler because the response body is a file, not the JSON envelope.
func (h *ReportHandlers) ExportOrders(c *gin.Context) {
	log := logger.WithCtx(c, "ReportHandlers.ExportOrders")

	param := model.OrderParam{}
	if err := c.BindQuery(&param); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if param.Status != "" {
		if _, err := model.ParseOrderStatus(param.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	file, err := h.service.ExportOrders(c.Request.Context(), param)
	if err != nil {
		log.WithError(err).Error("Fail to build orders report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ReportFileName()))
	if err = file.Write(c.Writer); err != nil {
		log.WithError(err).Error("Fail to stream orders report")
	}
}
