package repository

import (
	"context"

	"github.com/nattcha/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

// RoomQuery carries the list-endpoint options: filters, sorting, field
// selection and pagination.
type RoomQuery struct {
	Available   *bool
	MinCapacity *int
	MinPrice    *float64
	MaxPrice    *float64
	Sort        []string // column names, "-" prefix for descending
	Fields      []string
	Page        int
	Limit       int
}

// sortableColumns guards Order/Select clauses against arbitrary input.
var sortableColumns = map[string]bool{
	"id":          true,
	"title":       true,
	"description": true,
	"price":       true,
	"capacity":    true,
	"available":   true,
	"created_at":  true,
	"updated_at":  true,
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindAll(ctx context.Context, q RoomQuery) ([]models.Room, error)
	Count(ctx context.Context) (int64, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction, serializing concurrent booking attempts for the same room.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, q RoomQuery) ([]models.Room, error) {
	query := r.db.WithContext(ctx).Model(&models.Room{})

	if q.Available != nil {
		query = query.Where("available = ?", *q.Available)
	}
	if q.MinCapacity != nil {
		query = query.Where("capacity >= ?", *q.MinCapacity)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}

	ordered := false
	for _, s := range q.Sort {
		col, dir := s, "ASC"
		if len(s) > 1 && s[0] == '-' {
			col, dir = s[1:], "DESC"
		}
		if sortableColumns[col] {
			query = query.Order(col + " " + dir)
			ordered = true
		}
	}
	if !ordered {
		query = query.Order("created_at DESC")
	}

	if len(q.Fields) > 0 {
		cols := make([]string, 0, len(q.Fields))
		for _, f := range q.Fields {
			if sortableColumns[f] || f == "images" || f == "features" {
				cols = append(cols, f)
			}
		}
		if len(cols) > 0 {
			query = query.Select(cols)
		}
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	query = query.Offset((page - 1) * limit).Limit(limit)

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error
	return count, err
}
