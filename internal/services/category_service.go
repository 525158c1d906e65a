package services

import (
	"database/sql"

	"github.com/bazaarlabs/bazaar-be/internal/models"
)

// CategoryServiceProvider defines the interface for category services.
type CategoryServiceProvider interface {
	GetAllCategories() ([]models.CategoryWithCount, error)
	CreateCategory(name string) (models.Category, error)
}

// CategoryService provides business logic for category management.
type CategoryService struct {
	db *sql.DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetAllCategories retrieves every category with its item count. Categories
// with no items are included with a count of zero.
func (s *CategoryService) GetAllCategories() ([]models.CategoryWithCount, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, COUNT(i.id)
		FROM categories c
		LEFT JOIN items i ON i.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategoryWithCount{}
	for rows.Next() {
		var c models.CategoryWithCount
		if err := rows.Scan(&c.ID, &c.Name, &c.ItemCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory creates a new category with a unique name.
func (s *CategoryService) CreateCategory(name string) (models.Category, error) {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(1) FROM categories WHERE name = ?", name).Scan(&exists)
	if err != nil {
		return models.Category{}, err
	}
	if exists > 0 {
		return models.Category{}, ErrCategoryExists
	}

	stmt, err := s.db.Prepare("INSERT INTO categories(name) VALUES(?)")
	if err != nil {
		return models.Category{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(name)
	if err != nil {
		return models.Category{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{ID: id, Name: name}, nil
}
