package service

import (
	"context"
	"errors"
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

type ProductService struct {
	repo repo.StoreInterface
}

func NewProductService(repo repo.StoreInterface) ProductServiceInterface {
	return &ProductService{repo: repo}
}

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, req model.ProductBody) (rs model.Product, err error)
	GetOneProduct(ctx context.Context, id string) (rs model.Product, err error)
	GetProducts(ctx context.Context, param model.ProductParam) (rs []model.Product, err error)
	UpdateProduct(ctx context.Context, id string, req model.UpdateProductReq) (rs model.Product, err error)
	DeleteProduct(ctx context.Context, id string) error
}

func (s *ProductService) CreateProduct(ctx context.Context, req model.ProductBody) (rs model.Product, err error) {
	log := logger.WithCtx(ctx, "ProductService.CreateProduct")

	farmerID, err := primitive.ObjectIDFromHex(req.FarmerID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid farmer id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid farmer ID format")
	}

	product := model.Product{
		FarmerID:    farmerID,
		FarmerName:  req.FarmerName,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Image:       req.Image,
	}
	product.InStock = product.Quantity > 0

	if err = s.repo.CreateProduct(ctx, &product); err != nil {
		log.WithError(err).Error("error_500: create product in CreateProduct - ProductService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return product, nil
}

func (s *ProductService) GetOneProduct(ctx context.Context, id string) (rs model.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid product ID format")
	}
	rs, err = s.repo.GetOneProduct(ctx, productID)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return rs, ginext.NewError(http.StatusNotFound, "Product not found")
	}
	return rs, err
}

func (s *ProductService) GetProducts(ctx context.Context, param model.ProductParam) ([]model.Product, error) {
	return s.repo.GetProducts(ctx, param)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req model.UpdateProductReq) (rs model.Product, err error) {
	log := logger.WithCtx(ctx, "ProductService.UpdateProduct")

	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid product ID format")
	}
	rs, err = s.repo.UpdateProduct(ctx, productID, req)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Product not found")
		}
		log.WithError(err).Error("error_500: update product in UpdateProduct - ProductService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return rs, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ginext.NewError(http.StatusBadRequest, "Invalid product ID format")
	}
	err = s.repo.DeleteProduct(ctx, productID)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return ginext.NewError(http.StatusNotFound, "Product not found")
	}
	return err
}
