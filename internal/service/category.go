package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func NewCategoryService(r *repo.GormRepo) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx)
}

func (s *CategoryService) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.Repo.GetCategoryByName(ctx, name)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: category %q", ErrNotFound, name)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.Repo.CategoryExistsByName(ctx, name)
}

// Save creates or updates a category. A new category may not reuse an
// existing name.
func (s *CategoryService) Save(ctx context.Context, category *models.Category) error {
	if category == nil {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if category.ID == 0 {
		exists, err := s.Repo.CategoryExistsByName(ctx, category.Name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: category %q already exists", ErrValidation, category.Name)
		}
	}
	return s.Repo.SaveCategory(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	exists, err := s.Repo.CategoryExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return s.Repo.DeleteCategory(ctx, id)
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountCategories(ctx)
}
