package recipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// Repository is a read-only view of the recipes table. The planner uses it to
// snapshot the recipe name and image onto a reminder at registration time.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new recipe repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a recipe by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Recipe, error) {
	query := `
		SELECT id, name, image_url
		FROM recipes
		WHERE id = $1;
    `

	var rec model.Recipe
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Name, &rec.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Recipe{}, ErrRecipeNotFound
		}

		return model.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}

	return rec, nil
}
