package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// ListOptions controls ordering and paging of list queries.
// PageSize <= 0 disables pagination and returns the full table, which is the
// contract the public pages and the CSV export rely on.
type ListOptions struct {
	OrderBy   string
	Ascending bool
	Page      int
	PageSize  int
}

func (o ListOptions) orderClause() string {
	if o.OrderBy == "" {
		return "created_at DESC"
	}
	dir := "DESC"
	if o.Ascending {
		dir = "ASC"
	}
	return o.OrderBy + " " + dir
}

// CrudRepository is the shared table access core. Every entity repository
// embeds it; the handful of bespoke queries (slug lookup, status counts)
// live on the entity repositories themselves.
//
// Repositories hold no state: the *gorm.DB handle is passed per call so the
// same instance serves both the request-scoped pool and test transactions.
type CrudRepository[T any] struct{}

// List returns one page of records plus the unpaged total.
func (r *CrudRepository[T]) List(db *gorm.DB, filter map[string]interface{}, opts ListOptions) ([]T, int64, error) {
	var records []T
	var total int64

	q := db.Model(new(T))
	if len(filter) > 0 {
		q = q.Where(filter)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(opts.orderClause())
	if opts.PageSize > 0 {
		page := opts.Page
		if page <= 0 {
			page = 1
		}
		q = q.Offset((page - 1) * opts.PageSize).Limit(opts.PageSize)
	}

	if err := q.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *CrudRepository[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	var record T
	err := db.First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *CrudRepository[T]) Create(db *gorm.DB, record *T) error {
	return db.Create(record).Error
}

// Update applies a partial field map. Repeating an update that changes
// nothing still succeeds, so status writes stay idempotent.
func (r *CrudRepository[T]) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(new(T)).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(db, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *CrudRepository[T]) Delete(db *gorm.DB, id string) error {
	result := db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *CrudRepository[T]) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(new(T)).Count(&count).Error
	return count, err
}

func (r *CrudRepository[T]) CountWhere(db *gorm.DB, filter map[string]interface{}) (int64, error) {
	var count int64
	err := db.Model(new(T)).Where(filter).Count(&count).Error
	return count, err
}
