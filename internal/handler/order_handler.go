package handler

import (
	"net/http"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type OrderHandler struct {
	ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService}
}

// CreateOrder godoc
// @Summary Оформление заказа
// @Description Клиент оформляет заказ на свой адрес. Цены фиксируются в момент оформления, администраторы получают уведомление.
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateOrderRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 201 {object} requestresponse.OrderResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Адрес или позиция не найдены"
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.OrderService.Create(r.Context(), actor, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, requestresponse.OrderResponse{Message: "Pedido criado com sucesso", Order: order})
}

// ListOrders godoc
// @Summary Все заказы
// @Description Только для администратора, новые сначала
// @Tags Orders
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param pageSize query int false "Размер страницы" default(10) maximum(100)
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.OrderPageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	orders, err := h.OrderService.ListAll(r.Context(), page, pageSize)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, orders)
}

// ListClientOrders godoc
// @Summary Заказы клиента
// @Description Доступно самому клиенту или администратору
// @Tags Orders
// @Produce json
// @Param clientId path int true "ID клиента"
// @Param page query int false "Страница" default(1)
// @Param pageSize query int false "Размер страницы" default(10) maximum(100)
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.OrderPageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Router /api/orders/client/{clientId} [get]
func (h *OrderHandler) ListClientOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	clientID, err := parseID(r, "clientId")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	page, pageSize := pageParams(r)
	orders, err := h.OrderService.ListByClient(r.Context(), actor, clientID, page, pageSize)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Заказ с позициями
// @Tags Orders
// @Produce json
// @Param id path int true "ID заказа"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.OrderResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	order, err := h.OrderService.GetByID(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.OrderResponse{Order: order})
}

// UpdateOrderStatus godoc
// @Summary Смена статуса заказа
// @Description Только для администратора. Клиент получает уведомление в реальном времени.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param body body requestresponse.UpdateOrderStatusRequest true "Новый статус"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.OrderResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/orders/{id} [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req requestresponse.UpdateOrderStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.OrderService.UpdateStatus(r.Context(), actor, id, model.OrderStatus(req.Status))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.OrderResponse{Message: "OK", Order: order})
}

// DeleteOrder godoc
// @Summary Удаление заказа
// @Description Только для администратора, позиции заказа удаляются каскадно
// @Tags Orders
// @Param id path int true "ID заказа"
// @Security ApiKeyAuth
// @Success 204 "Заказ удалён"
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.OrderService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
