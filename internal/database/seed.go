package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"gorm.io/gorm"
)

// SeedIngredients loads catalog ingredients from a CSV file with rows of the
// form "name,type,quantity,is_favorite". Names are stored lower-case; rows
// whose name already exists are skipped, so reseeding is safe.
func SeedIngredients(db *gorm.DB, path string) error {
	records, err := readCSV(path, ',')
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if len(record) < 4 {
				return fmt.Errorf("malformed ingredient row: %v", record)
			}

			name := strings.ToLower(strings.TrimSpace(record[0]))
			if name == "" {
				continue
			}

			var existing models.Ingredient
			err := tx.Where("name = ?", name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			quantity, err := strconv.Atoi(strings.TrimSpace(record[2]))
			if err != nil {
				return fmt.Errorf("invalid quantity for %q: %w", name, err)
			}
			favorite, err := strconv.ParseBool(strings.TrimSpace(record[3]))
			if err != nil {
				return fmt.Errorf("invalid favorite flag for %q: %w", name, err)
			}

			ingredient := models.Ingredient{
				Name:           name,
				IngredientType: strings.ToLower(strings.TrimSpace(record[1])),
				Quantity:       quantity,
				IsFavorite:     favorite,
			}
			if err := tx.Create(&ingredient).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedRecipes loads catalog recipes from a semicolon-delimited CSV file with
// rows of the form "name;instructions;ingredient|ingredient|...". The third
// column is optional; listed ingredients must already exist in the catalog and
// unknown names are ignored. Rows whose recipe name already exists are skipped.
func SeedRecipes(db *gorm.DB, path string) error {
	records, err := readCSV(path, ';')
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if len(record) < 2 {
				return fmt.Errorf("malformed recipe row: %v", record)
			}

			name := strings.TrimSpace(record[0])
			if name == "" {
				continue
			}

			var existing models.Recipe
			err := tx.Where("name = ?", name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			recipe := models.Recipe{
				Name:         name,
				Instructions: strings.TrimSpace(record[1]),
			}

			if len(record) >= 3 {
				for _, ingredientName := range strings.Split(record[2], "|") {
					ingredientName = strings.ToLower(strings.TrimSpace(ingredientName))
					if ingredientName == "" {
						continue
					}
					var ingredient models.Ingredient
					if err := tx.Where("name = ?", ingredientName).First(&ingredient).Error; err != nil {
						if errors.Is(err, gorm.ErrRecordNotFound) {
							continue
						}
						return err
					}
					recipe.Ingredients = append(recipe.Ingredients, ingredient)
				}
			}

			if err := tx.Create(&recipe).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func readCSV(path string, delimiter rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}
