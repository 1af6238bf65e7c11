package service

import (
	"context"
	"strings"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type CategoryService struct {
	db                 *config.Database
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(db *config.Database, categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{db: db, categoryRepository: categoryRepository}
}

func (s *CategoryService) Create(ctx context.Context, req requestresponse.CreateCategoryRequest) (*model.Category, error) {
	return s.categoryRepository.Create(ctx, s.db, &model.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	})
}

func (s *CategoryService) ListAll(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepository.List(ctx, s.db)
}

func (s *CategoryService) Update(ctx context.Context, id int64, req requestresponse.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&category.Name, req.Name)
	setIfPresent(&category.Description, req.Description)

	return s.categoryRepository.Update(ctx, s.db, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categoryRepository.Delete(ctx, s.db, id)
}
