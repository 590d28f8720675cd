package route

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/sirupsen/logrus"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/handlers"
	"agrifresh/ms-marketplace/pkg/repo"
	service2 "agrifresh/ms-marketplace/pkg/service"
)

type Service struct {
	*service.BaseApp
}

// NewService wires the store, the services and the route table. Storage is
// picked once here: mongo when reachable, the in-memory fallback otherwise.
func NewService() *Service {
	s := &Service{
		service.NewApp("MS Marketplace", "v1.0"),
	}

	store := selectStore(context.Background())

	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"PUT", "PATCH", "GET", "DELETE", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	userService := service2.NewUserService(store)
	productService := service2.NewProductService(store)
	orderService := service2.NewOrderService(store)
	deliveryService := service2.NewDeliveryService(store)
	notificationService := service2.NewNotificationService(store)
	paymentService := service2.NewPaymentService(store, orderService)
	reportService := service2.NewReportService(store)

	userHandle := handlers.NewUserHandlers(userService)
	productHandle := handlers.NewProductHandlers(productService)
	orderHandle := handlers.NewOrderHandlers(orderService)
	deliveryHandle := handlers.NewDeliveryHandlers(deliveryService)
	notificationHandle := handlers.NewNotificationHandlers(notificationService)
	paymentHandle := handlers.NewPaymentHandlers(paymentService)
	reportHandle := handlers.NewReportHandlers(reportService)

	v1Api := s.Router.Group("/api/v1")

	// auth
	v1Api.POST("/auth/register", ginext.WrapHandler(userHandle.Register))
	v1Api.POST("/auth/login", ginext.WrapHandler(userHandle.Login))

	// users
	v1Api.GET("/users", ginext.WrapHandler(userHandle.GetUsers))
	v1Api.GET("/users/:id", ginext.WrapHandler(userHandle.GetOneUser))
	v1Api.PUT("/users/:id", ginext.WrapHandler(userHandle.UpdateUser))
	v1Api.DELETE("/users/:id", ginext.WrapHandler(userHandle.DeleteUser))
	v1Api.PATCH("/admin/actions/approve-farmer", ginext.WrapHandler(userHandle.ApproveFarmer))

	// products
	v1Api.GET("/products", ginext.WrapHandler(productHandle.GetProducts))
	v1Api.POST("/products", ginext.WrapHandler(productHandle.CreateProduct))
	v1Api.GET("/products/:id", ginext.WrapHandler(productHandle.GetOneProduct))
	v1Api.PUT("/products/:id", ginext.WrapHandler(productHandle.UpdateProduct))
	v1Api.DELETE("/products/:id", ginext.WrapHandler(productHandle.DeleteProduct))

	// orders
	v1Api.GET("/orders", ginext.WrapHandler(orderHandle.GetOrders))
	v1Api.POST("/orders", ginext.WrapHandler(orderHandle.CreateOrder))
	v1Api.GET("/orders/:id", ginext.WrapHandler(orderHandle.GetOneOrder))
	v1Api.PUT("/orders/:id", ginext.WrapHandler(orderHandle.UpdateOrder))
	v1Api.PATCH("/orders/:id/mark-paid", ginext.WrapHandler(orderHandle.MarkOrderPaid))
	v1Api.PATCH("/orders/actions/pack", ginext.WrapHandler(orderHandle.PackOrder))
	v1Api.PATCH("/orders/actions/dispatch", ginext.WrapHandler(orderHandle.DispatchOrder))

	// deliveries
	v1Api.GET("/deliveries", ginext.WrapHandler(deliveryHandle.GetDeliveries))
	v1Api.POST("/deliveries", ginext.WrapHandler(deliveryHandle.CreateDelivery))
	v1Api.PUT("/deliveries/:id", ginext.WrapHandler(deliveryHandle.UpdateDelivery))
	v1Api.POST("/deliveries/actions/assign", ginext.WrapHandler(deliveryHandle.AssignDelivery))
	v1Api.PATCH("/deliveries/actions/update-status", ginext.WrapHandler(deliveryHandle.UpdateDeliveryStatus))

	// notifications
	v1Api.GET("/notifications", ginext.WrapHandler(notificationHandle.GetNotifications))
	v1Api.POST("/notifications", ginext.WrapHandler(notificationHandle.CreateNotification))
	v1Api.PATCH("/notifications/:id", ginext.WrapHandler(notificationHandle.MarkNotificationRead))

	// payments
	v1Api.POST("/payments", ginext.WrapHandler(paymentHandle.CreatePayment))
	v1Api.PATCH("/payments", ginext.WrapHandler(paymentHandle.UpdatePayment))

	// reports
	v1Api.GET("/reports/orders/export", reportHandle.ExportOrders)

	return s
}

// selectStore connects to mongo when enabled and falls back to the in-memory
// store when the connection fails and the fallback is allowed. Fallback data
// does not survive a restart.
func selectStore(ctx context.Context) repo.StoreInterface {
	cfg := conf.LoadEnv()
	if cfg.EnableDB == "true" {
		db, err := repo.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err == nil {
			store := repo.NewMongoRepo(db)
			if mongoRepo, ok := store.(*repo.RepoMongo); ok {
				if err = mongoRepo.EnsureIndexes(ctx); err != nil {
					logrus.WithError(err).Warn("Fail to ensure mongo indexes")
				}
			}
			logrus.Infof("Connected to mongo database %v", cfg.MongoDB)
			return store
		}
		if cfg.EnableFallback != "true" {
			logrus.WithError(err).Fatal("Fail to connect mongo and fallback is disabled")
		}
		logrus.WithError(err).Warn("Fail to connect mongo, switching to in-memory store")
	}
	return repo.NewMemRepo()
}
