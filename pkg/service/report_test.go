package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

func TestReportService_ExportOrders(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewReportService(store)

	seeded := []model.Order{
		{
			CustomerID:    primitive.NewObjectID(),
			CustomerName:  "Asha Rao",
			Items:         []model.OrderItem{{ProductName: "Tomatoes", Quantity: 2, Price: 40}},
			TotalAmount:   80,
			Status:        model.OrderStatusDelivered,
			PaymentStatus: model.PaymentStatusPaid,
			OrderDate:     time.Now().UTC(),
		},
		{
			CustomerID:    primitive.NewObjectID(),
			CustomerName:  "Vikram Shah",
			Items:         []model.OrderItem{{ProductName: "Spinach", Quantity: 1, Price: 25}},
			TotalAmount:   25,
			Status:        model.OrderStatusPending,
			PaymentStatus: model.PaymentStatusPending,
			OrderDate:     time.Now().UTC(),
		},
	}
	for i := range seeded {
		if err := store.CreateOrder(ctx, &seeded[i]); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	file, err := svc.ExportOrders(ctx, model.OrderParam{})
	if err != nil {
		t.Fatalf("ExportOrders: %v", err)
	}
	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	rows, err := file.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	// header plus one row per order
	if len(rows) != len(seeded)+1 {
		t.Fatalf("workbook has %v rows, want %v", len(rows), len(seeded)+1)
	}
	if rows[0][0] != "Order ID" || rows[0][1] != "Customer" {
		t.Errorf("header = %v, want Order ID / Customer first", rows[0])
	}
	for i, order := range seeded {
		row := rows[i+1]
		if row[0] != order.ID.Hex() {
			t.Errorf("row %v order id = %v, want %v", i+1, row[0], order.ID.Hex())
		}
		if row[1] != order.CustomerName {
			t.Errorf("row %v customer = %v, want %v", i+1, row[1], order.CustomerName)
		}
		if row[2] != string(order.Status) || row[3] != string(order.PaymentStatus) {
			t.Errorf("row %v status = %v/%v, want %v/%v", i+1, row[2], row[3], order.Status, order.PaymentStatus)
		}
		if got, err := strconv.ParseFloat(row[4], 64); err != nil || got != order.TotalAmount {
			t.Errorf("row %v total = %v, want %v", i+1, row[4], order.TotalAmount)
		}
	}

	// status filter narrows the report
	filtered, err := svc.ExportOrders(ctx, model.OrderParam{Status: "delivered"})
	if err != nil {
		t.Fatalf("ExportOrders filtered: %v", err)
	}
	rows, err = filtered.GetRows(filtered.GetSheetName(filtered.GetActiveSheetIndex()))
	if err != nil {
		t.Fatalf("GetRows filtered: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("filtered workbook has %v rows, want header plus the delivered order", len(rows))
	}

	if _, err = svc.ExportOrders(ctx, model.OrderParam{Status: "bogus"}); err == nil {
		t.Error("expected error for unknown status filter")
	}
}
