package repository

import (
	"strings"

	"nutricheck/internal/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Upsert(ingredient *models.CustomIngredient) error
	FindAll() ([]models.CustomIngredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// Upsert stores the row under the lower-cased name, replacing the nutrition
// values of an existing entry.
func (r *ingredientRepository) Upsert(ingredient *models.CustomIngredient) error {
	ingredient.Name = strings.ToLower(strings.TrimSpace(ingredient.Name))

	var existing models.CustomIngredient
	err := r.db.Where("name = ?", ingredient.Name).First(&existing).Error
	if err == nil {
		ingredient.ID = existing.ID
		ingredient.CreatedAt = existing.CreatedAt
		return r.db.Save(ingredient).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepository) FindAll() ([]models.CustomIngredient, error) {
	var ingredients []models.CustomIngredient
	err := r.db.Order("name ASC").Find(&ingredients).Error
	return ingredients, err
}
