package bookrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookRepository implements BookRepository using GORM.
type GormBookRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookRepository creates a new GORM book repository.
func NewGormBookRepository(db *gorm.DB, tracker aggregateTracker) *GormBookRepository {
	return &GormBookRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new book to the database.
func (r *GormBookRepository) Add(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing book to the database.
func (r *GormBookRepository) Update(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a book by ID.
func (r *GormBookRepository) Get(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("book", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog sorted by title.
func (r *GormBookRepository) GetAll(ctx context.Context) ([]*book.Book, error) {
	var dtos []BookDTO
	if err := r.db.WithContext(ctx).Order("title").Find(&dtos).Error; err != nil {
		return nil, err
	}

	books := make([]*book.Book, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, nil
}

// DecrementStock atomically subtracts quantity from the stock, guarded by
// a condition so concurrent orders cannot oversell. The UPDATE only
// matches when enough stock remains; zero affected rows means the
// condition failed and the book's stock is untouched.
func (r *GormBookRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Model(&BookDTO{}).
		Where("id = ? AND stock_quantity >= ?", id.Bytes(), quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		aggregate, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return book.NewInsufficientStockError(aggregate.Title(), quantity, aggregate.StockQuantity())
	}

	return nil
}

// IncrementStock adds quantity back to the book's stock.
func (r *GormBookRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Model(&BookDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("book", id.String())
	}

	return nil
}

// Delete removes a book from the catalog.
func (r *GormBookRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BookDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("book", id.String())
	}

	return nil
}
