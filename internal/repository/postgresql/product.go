package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

type ProductRepo struct {
	db db.DB
}

func NewProductRepo(db db.DB) storage.ProductRepository {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, product *repository.Product) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO products (
            id, seller_id, name, description, category, make, model,
            year_from, year_to, condition, price, stock_quantity,
            rating_average, rating_count, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `, product.ID, product.SellerID, product.Name, product.Description, product.Category,
		product.Make, product.Model, product.YearFrom, product.YearTo, product.Condition,
		product.Price, product.StockQuantity, product.RatingAverage, product.RatingCount,
		product.CreatedAt, product.UpdatedAt)
	return err
}

func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Product, error) {
	var product repository.Product
	err := r.db.Get(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Product, error) {
	var product repository.Product
	err := tx.Get(ctx, &product, "SELECT * FROM products WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) Update(ctx context.Context, product *repository.Product) error {
	_, err := r.db.Exec(ctx, `
        UPDATE products
        SET
            name = $1,
            description = $2,
            category = $3,
            make = $4,
            model = $5,
            year_from = $6,
            year_to = $7,
            condition = $8,
            price = $9,
            stock_quantity = $10,
            updated_at = $11
        WHERE id = $12
    `, product.Name, product.Description, product.Category, product.Make, product.Model,
		product.YearFrom, product.YearTo, product.Condition, product.Price,
		product.StockQuantity, product.UpdatedAt, product.ID)
	return err
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context, filter storage.ProductFilter) ([]*repository.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.SellerID != nil {
		add("seller_id = $%d", *filter.SellerID)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Make != "" {
		add("make = $%d", filter.Make)
	}
	if filter.Model != "" {
		add("model = $%d", filter.Model)
	}
	if filter.Condition != "" {
		add("condition = $%d", filter.Condition)
	}
	if filter.Year != 0 {
		add("year_from <= $%d", filter.Year)
		add("year_to >= $%d", filter.Year)
	}

	query := "SELECT * FROM products"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (page-1)*limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var products []*repository.Product
	err := r.db.Select(ctx, &products, query, args...)
	return products, err
}

func (r *ProductRepo) AdjustStockTx(ctx context.Context, tx db.Tx, id uuid.UUID, delta int) error {
	_, err := tx.Exec(ctx, `
        UPDATE products
        SET stock_quantity = stock_quantity + $1
        WHERE id = $2
    `, delta, id)
	return err
}

func (r *ProductRepo) UpdateRatingTx(ctx context.Context, tx db.Tx, id uuid.UUID, average float64, count int) error {
	_, err := tx.Exec(ctx, `
        UPDATE products
        SET rating_average = $1, rating_count = $2
        WHERE id = $3
    `, average, count, id)
	return err
}
