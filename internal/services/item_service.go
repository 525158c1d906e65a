package services

import (
	"database/sql"

	"github.com/bazaarlabs/bazaar-be/internal/models"
)

// ItemFilter narrows an item listing. Zero-valued fields are ignored;
// set fields combine with AND semantics.
type ItemFilter struct {
	Search     string // substring match on the item name, case-insensitive
	CategoryID *int64
	UserID     *int64
}

// ItemServiceProvider defines the interface for item services.
type ItemServiceProvider interface {
	GetItems(filter ItemFilter) ([]models.ItemDetail, error)
	CreateItem(item models.Item) (models.Item, error)
}

// ItemService provides business logic for item management.
type ItemService struct {
	db *sql.DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *sql.DB) *ItemService {
	return &ItemService{db: db}
}

// GetItems retrieves items matching the filter, with category and owner
// resolved in the same query.
func (s *ItemService) GetItems(filter ItemFilter) ([]models.ItemDetail, error) {
	query := `
		SELECT i.id, i.name, i.description, i.image_file, i.image_name,
		       c.id, c.name, u.id, u.username
		FROM items i
		JOIN categories c ON c.id = i.category_id
		JOIN users u ON u.id = i.user_id`

	var args []interface{}
	conds := []string{}
	if filter.Search != "" {
		conds = append(conds, "i.name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.CategoryID != nil {
		conds = append(conds, "i.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.UserID != nil {
		conds = append(conds, "i.user_id = ?")
		args = append(args, *filter.UserID)
	}
	for idx, cond := range conds {
		if idx == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY i.id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.ItemDetail{}
	for rows.Next() {
		var it models.ItemDetail
		var description, imageFile, imageName sql.NullString
		err := rows.Scan(&it.ID, &it.Name, &description, &imageFile, &imageName,
			&it.Category.ID, &it.Category.Name, &it.User.ID, &it.User.Username)
		if err != nil {
			return nil, err
		}
		it.Description = description.String
		it.ImageFile = imageFile.String
		it.ImageName = imageName.String
		items = append(items, it)
	}
	return items, rows.Err()
}

// CreateItem persists a new item after checking the referenced category
// exists. The owning user comes from the caller's verified identity.
func (s *ItemService) CreateItem(item models.Item) (models.Item, error) {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(1) FROM categories WHERE id = ?", item.CategoryID).Scan(&exists)
	if err != nil {
		return models.Item{}, err
	}
	if exists == 0 {
		return models.Item{}, ErrCategoryNotFound
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO items(name, description, image_file, image_name, category_id, user_id)
		VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Item{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(item.Name, item.Description, item.ImageFile, item.ImageName, item.CategoryID, item.UserID)
	if err != nil {
		return models.Item{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = id
	return item, nil
}
