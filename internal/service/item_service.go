package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type ItemService struct {
	db                 *config.Database
	itemRepository     ports.ItemRepository
	categoryRepository ports.CategoryRepository
	storage            ports.ObjectStorage
	presignTTL         time.Duration
}

// NewItemService : storage может быть nil, тогда загрузка картинок отключена
func NewItemService(
	db *config.Database,
	itemRepository ports.ItemRepository,
	categoryRepository ports.CategoryRepository,
	storage ports.ObjectStorage,
	presignTTL time.Duration,
) *ItemService {
	return &ItemService{
		db:                 db,
		itemRepository:     itemRepository,
		categoryRepository: categoryRepository,
		storage:            storage,
		presignTTL:         presignTTL,
	}
}

func (s *ItemService) Create(ctx context.Context, req requestresponse.CreateItemRequest) (*model.Item, error) {
	if _, err := s.categoryRepository.FindByID(ctx, s.db, req.CategoryID); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := s.itemRepository.Create(ctx, s.db, &model.Item{
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		UnitPriceCents: req.UnitPriceCents,
		CategoryID:     req.CategoryID,
		ImageURL:       strings.TrimSpace(req.ImageURL),
		Available:      available,
	})
	if err != nil {
		return nil, err
	}

	s.resolveImage(ctx, item)
	return item, nil
}

func (s *ItemService) ListAll(ctx context.Context) ([]model.Item, error) {
	items, err := s.itemRepository.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.resolveImage(ctx, &items[i])
	}
	return items, nil
}

func (s *ItemService) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.itemRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	s.resolveImage(ctx, item)
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id int64, req requestresponse.UpdateItemRequest) (*model.Item, error) {
	item, err := s.itemRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != item.CategoryID {
		if _, err := s.categoryRepository.FindByID(ctx, s.db, *req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *req.CategoryID
	}

	setIfPresent(&item.Name, req.Name)
	setIfPresent(&item.Description, req.Description)
	setIfPresent(&item.ImageURL, req.ImageURL)
	if req.UnitPriceCents != nil {
		item.UnitPriceCents = *req.UnitPriceCents
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	updated, err := s.itemRepository.Update(ctx, s.db, item)
	if err != nil {
		return nil, err
	}

	s.resolveImage(ctx, updated)
	return updated, nil
}

// Delete : картинка в S3 удаляется после строки, её ошибка только логируется
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	item, err := s.itemRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}

	if err := s.itemRepository.Delete(ctx, s.db, id); err != nil {
		return err
	}

	if item.ImageKey != "" && s.storage != nil {
		s.deleteImage(ctx, id, item.ImageKey)
	}
	return nil
}

// CreateImageUploadURL : presigned PUT для картинки позиции.
// Позиция не меняется, ключ сохраняет ConfirmImageUpload после загрузки.
func (s *ItemService) CreateImageUploadURL(ctx context.Context, id int64, contentType string) (*requestresponse.ImageUploadResponse, error) {
	if s.storage == nil {
		return nil, apperror.ErrStorageDisabled
	}
	if !allowedImageTypes[contentType] {
		return nil, apperror.ErrUnsupportedImageType
	}

	if _, err := s.itemRepository.FindByID(ctx, s.db, id); err != nil {
		return nil, err
	}

	key := imageKeyPrefix(id) + uuid.NewString()
	uploadURL, err := s.storage.GeneratePresignedPutURL(ctx, key, contentType, s.presignTTL)
	if err != nil {
		return nil, err
	}

	return &requestresponse.ImageUploadResponse{
		UploadURL: uploadURL,
		Key:       key,
		ExpiresIn: int(s.presignTTL.Seconds()),
	}, nil
}

// ConfirmImageUpload : привязывает загруженный объект к позиции.
// Объект с неразрешённым типом удаляется, прежняя картинка остаётся.
func (s *ItemService) ConfirmImageUpload(ctx context.Context, id int64, key string) (*model.Item, error) {
	if s.storage == nil {
		return nil, apperror.ErrStorageDisabled
	}

	prefix := imageKeyPrefix(id)
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return nil, apperror.ErrInvalidImageKey
	}

	item, err := s.itemRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	contentType, err := s.storage.ObjectContentType(ctx, key)
	if err != nil {
		return nil, err
	}
	if !allowedImageTypes[contentType] {
		s.deleteImage(ctx, id, key)
		return nil, apperror.ErrUnsupportedImageType
	}

	if err := s.itemRepository.SetImageKey(ctx, s.db, id, key); err != nil {
		return nil, err
	}

	if item.ImageKey != "" && item.ImageKey != key {
		s.deleteImage(ctx, id, item.ImageKey)
	}

	item.ImageKey = key
	s.resolveImage(ctx, item)
	return item, nil
}

func imageKeyPrefix(id int64) string {
	return fmt.Sprintf("items/%d/", id)
}

func (s *ItemService) deleteImage(ctx context.Context, id int64, key string) {
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"item_id": id, "key": key}).Warn("не удалось удалить картинку позиции")
	}
}

// resolveImage : при наличии ключа S3 подменяет imageUrl на presigned GET
func (s *ItemService) resolveImage(ctx context.Context, item *model.Item) {
	if item.ImageKey == "" || s.storage == nil {
		return
	}

	url, err := s.storage.GeneratePresignedGetURL(ctx, item.ImageKey, s.presignTTL)
	if err != nil {
		logrus.WithError(err).WithField("item_id", item.ID).Warn("не удалось получить ссылку на картинку")
		return
	}
	item.ImageURL = url
}
