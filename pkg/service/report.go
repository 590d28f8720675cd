package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

type ReportService struct {
	repo repo.StoreInterface
}

func NewReportService(repo repo.StoreInterface) ReportServiceInterface {
	return &ReportService{repo: repo}
}

type ReportServiceInterface interface {
	ExportOrders(ctx context.Context, param model.OrderParam) (rs *excelize.File, err error)
}

var orderReportHeader = []string{"Order ID", "Customer", "Status", "Payment", "Total Amount", "Order Date", "Delivery Date"}

// ExportOrders builds the admin orders report as an xlsx workbook.
func (s *ReportService) ExportOrders(ctx context.Context, param model.OrderParam) (rs *excelize.File, err error) {
	log := logger.WithCtx(ctx, "ReportService.ExportOrders")

	if param.Status != "" {
		status, err := model.ParseOrderStatus(param.Status)
		if err != nil {
			return nil, ginext.NewError(http.StatusBadRequest, err.Error())
		}
		param.Status = string(status)
	}

	orders, _, err := s.repo.GetOrders(ctx, param)
	if err != nil {
		log.WithError(err).Error("error_500: list orders in ExportOrders - ReportService")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	for i, title := range orderReportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = file.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	for row, order := range orders {
		deliveryDate := ""
		if order.DeliveryDate != nil {
			deliveryDate = order.DeliveryDate.Format(time.RFC3339)
		}
		values := []interface{}{
			order.ID.Hex(),
			order.CustomerName,
			string(order.Status),
			string(order.PaymentStatus),
			order.TotalAmount,
			order.OrderDate.Format(time.RFC3339),
			deliveryDate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err = file.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	log.Infof("Exported %v orders", len(orders))
	return file, nil
}

// ReportFileName names the download with the generation date.
func ReportFileName() string {
	return fmt.Sprintf("orders-report-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
}
