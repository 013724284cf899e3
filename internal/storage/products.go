package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
)

type CreateProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	YearFrom      int     `json:"yearFrom"`
	YearTo        int     `json:"yearTo"`
	Condition     string  `json:"condition"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Make          *string  `json:"make"`
	Model         *string  `json:"model"`
	YearFrom      *int     `json:"yearFrom"`
	YearTo        *int     `json:"yearTo"`
	Condition     *string  `json:"condition"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stockQuantity"`
}

func validCondition(c string) bool {
	switch c {
	case "new", "used", "refurbished":
		return true
	}
	return false
}

func (s *PostgresStorage) CreateProduct(ctx context.Context, actor Actor, input CreateProductInput) (*Product, error) {
	if actor.Role != lifecycle.RoleSeller && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only sellers may list products", ErrForbidden)
	}
	if input.Name == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	if !validCondition(input.Condition) {
		return nil, fmt.Errorf("%w: condition must be new, used or refurbished", ErrValidation)
	}
	if input.Price < 0 || input.StockQuantity < 0 {
		return nil, fmt.Errorf("%w: price and stock must not be negative", ErrValidation)
	}

	now := time.Now().UTC()
	product := &repository.Product{
		ID:            uuid.New(),
		SellerID:      actor.UserID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Make:          input.Make,
		Model:         input.Model,
		YearFrom:      input.YearFrom,
		YearTo:        input.YearTo,
		Condition:     input.Condition,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return productFromRepo(product), nil
}

func (s *PostgresStorage) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return productFromRepo(product), nil
}

func (s *PostgresStorage) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	rows, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]Product, len(rows))
	for i, row := range rows {
		products[i] = *productFromRepo(row)
	}
	return products, nil
}

func (s *PostgresStorage) UpdateProduct(ctx context.Context, actor Actor, id uuid.UUID, input UpdateProductInput) (*Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !actor.IsAdmin() && product.SellerID != actor.UserID {
		return nil, ErrForbidden
	}
	if input.Condition != nil && !validCondition(*input.Condition) {
		return nil, fmt.Errorf("%w: condition must be new, used or refurbished", ErrValidation)
	}

	applyProductUpdate(product, input)
	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return productFromRepo(product), nil
}

func (s *PostgresStorage) DeleteProduct(ctx context.Context, actor Actor, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return fmt.Errorf("failed to get product: %w", err)
	}
	if !actor.IsAdmin() && product.SellerID != actor.UserID {
		return ErrForbidden
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func applyProductUpdate(product *repository.Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Make != nil {
		product.Make = *input.Make
	}
	if input.Model != nil {
		product.Model = *input.Model
	}
	if input.YearFrom != nil {
		product.YearFrom = *input.YearFrom
	}
	if input.YearTo != nil {
		product.YearTo = *input.YearTo
	}
	if input.Condition != nil {
		product.Condition = *input.Condition
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
}

func productFromRepo(row *repository.Product) *Product {
	return &Product{
		ID:            row.ID,
		SellerID:      row.SellerID,
		Name:          row.Name,
		Description:   row.Description,
		Category:      row.Category,
		Make:          row.Make,
		Model:         row.Model,
		YearFrom:      row.YearFrom,
		YearTo:        row.YearTo,
		Condition:     row.Condition,
		Price:         row.Price,
		StockQuantity: row.StockQuantity,
		RatingAverage: row.RatingAverage,
		RatingCount:   row.RatingCount,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
