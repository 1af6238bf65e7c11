package handler

import (
	"net/http"

	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type AddressHandler struct {
	ports.AddressService
}

func NewAddressHandler(addressService ports.AddressService) *AddressHandler {
	return &AddressHandler{addressService}
}

// ListMine godoc
// @Summary Адреса текущего пользователя
// @Tags Addresses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.AddressListResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/addresses [get]
func (h *AddressHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	addresses, err := h.AddressService.ListMine(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.AddressListResponse{Addresses: addresses})
}

// Create godoc
// @Summary Новый адрес доставки
// @Tags Addresses
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateAddressRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 201 {object} requestresponse.AddressResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/addresses [post]
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreateAddressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	address, err := h.AddressService.Create(r.Context(), actor.ID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, requestresponse.AddressResponse{Message: "OK", Address: address})
}

// Update godoc
// @Summary Частичное обновление адреса
// @Description Чужой адрес отвечает 404
// @Tags Addresses
// @Accept json
// @Produce json
// @Param id path int true "ID адреса"
// @Param body body requestresponse.UpdateAddressRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.AddressResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/addresses/{id} [patch]
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req requestresponse.UpdateAddressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	address, err := h.AddressService.Update(r.Context(), actor.ID, id, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.AddressResponse{Message: "OK", Address: address})
}

// Delete godoc
// @Summary Удаление адреса
// @Tags Addresses
// @Param id path int true "ID адреса"
// @Security ApiKeyAuth
// @Success 204 "Адрес удалён"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/addresses/{id} [delete]
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.AddressService.Delete(r.Context(), actor.ID, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
