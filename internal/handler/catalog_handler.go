package handler

import (
	"net/http"

	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type CategoryHandler struct {
	ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService}
}

// ListCategories godoc
// @Summary Список категорий
// @Tags Categories
// @Produce json
// @Success 200 {object} requestresponse.CategoryListResponse
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.CategoryListResponse{Categories: categories})
}

// CreateCategory godoc
// @Summary Новая категория
// @Description Только для администратора
// @Tags Categories
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateCategoryRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 201 {object} requestresponse.CategoryResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "Имя уже занято"
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := h.CategoryService.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, requestresponse.CategoryResponse{Message: "OK", Category: category})
}

// UpdateCategory godoc
// @Summary Частичное обновление категории
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "ID категории"
// @Param body body requestresponse.UpdateCategoryRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.CategoryResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req requestresponse.UpdateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := h.CategoryService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.CategoryResponse{Message: "OK", Category: category})
}

// DeleteCategory godoc
// @Summary Удаление категории
// @Description Категорию с позициями удалить нельзя (400)
// @Tags Categories
// @Param id path int true "ID категории"
// @Security ApiKeyAuth
// @Success 204 "Категория удалена"
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.CategoryService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ItemHandler struct {
	ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService}
}

// ListItems godoc
// @Summary Меню
// @Description imageUrl для картинок из S3 заменяется на presigned GET ссылку
// @Tags Items
// @Produce json
// @Success 200 {object} requestresponse.ItemListResponse
// @Router /api/items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.ItemListResponse{Items: items})
}

// GetItem godoc
// @Summary Позиция меню
// @Tags Items
// @Produce json
// @Param id path int true "ID позиции"
// @Success 200 {object} requestresponse.ItemResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	item, err := h.ItemService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.ItemResponse{Item: item})
}

// CreateItem godoc
// @Summary Новая позиция меню
// @Tags Items
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateItemRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 201 {object} requestresponse.ItemResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Категория не найдена"
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.ItemService.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, requestresponse.ItemResponse{Message: "OK", Item: item})
}

// UpdateItem godoc
// @Summary Частичное обновление позиции
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "ID позиции"
// @Param body body requestresponse.UpdateItemRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ItemResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/items/{id} [patch]
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req requestresponse.UpdateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.ItemService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.ItemResponse{Message: "OK", Item: item})
}

// DeleteItem godoc
// @Summary Удаление позиции
// @Tags Items
// @Param id path int true "ID позиции"
// @Security ApiKeyAuth
// @Success 204 "Позиция удалена"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateImageUploadURL godoc
// @Summary Ссылка для загрузки картинки
// @Description Выдаёт presigned PUT URL в S3. Позиция не меняется до подтверждения загрузки. Без настроенного S3 отвечает 503.
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "ID позиции"
// @Param body body requestresponse.ImageUploadRequest true "Тип картинки"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ImageUploadResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище не настроено"
// @Router /api/items/{id}/image-upload-url [post]
func (h *ItemHandler) CreateImageUploadURL(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req requestresponse.ImageUploadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	upload, err := h.ItemService.CreateImageUploadURL(r.Context(), id, req.ContentType)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, upload)
}

// ConfirmImageUpload godoc
// @Summary Подтверждение загрузки картинки
// @Description Проверяет, что объект загружен и его Content-Type разрешён, и делает его картинкой позиции. Объект с другим типом удаляется.
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "ID позиции"
// @Param body body requestresponse.ConfirmImageUploadRequest true "Ключ объекта"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ItemResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Ключ чужой, объект не загружен или тип не разрешён"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище не настроено"
// @Router /api/items/{id}/image [put]
func (h *ItemHandler) ConfirmImageUpload(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req requestresponse.ConfirmImageUploadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.ItemService.ConfirmImageUpload(r.Context(), id, req.Key)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.ItemResponse{Message: "OK", Item: item})
}
