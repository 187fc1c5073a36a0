package usecase

import (
	"context"
	"errors"
	"strings"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Search   string
	Category string
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if len(in.Search) > 100 {
		return []model.Product{}, NewValidationError("search too long")
	}
	if len(in.Category) > 100 {
		return []model.Product{}, NewValidationError("category too long")
	}

	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Search:   strings.TrimSpace(in.Search),
		Category: strings.TrimSpace(in.Category),
	})
	if err != nil {
		return []model.Product{}, NewPersistenceError(err)
	}
	return products, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewValidationError("invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewNotFoundError("product")
	}
	if err != nil {
		return model.Product{}, NewPersistenceError(err)
	}
	return p, nil
}
