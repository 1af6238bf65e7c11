package service

import (
	"context"
	"strings"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type AddressService struct {
	db                *config.Database
	addressRepository ports.AddressRepository
}

func NewAddressService(db *config.Database, addressRepository ports.AddressRepository) *AddressService {
	return &AddressService{db: db, addressRepository: addressRepository}
}

func (s *AddressService) Create(ctx context.Context, userID int64, req requestresponse.CreateAddressRequest) (*model.Address, error) {
	address := &model.Address{
		UserID:   userID,
		Street:   strings.TrimSpace(req.Street),
		Number:   strings.TrimSpace(req.Number),
		District: strings.TrimSpace(req.District),
		City:     strings.TrimSpace(req.City),
		State:    strings.TrimSpace(req.State),
		ZipCode:  strings.TrimSpace(req.ZipCode),
	}
	return s.addressRepository.Create(ctx, s.db, address)
}

// Update : чужой адрес выглядит как несуществующий
func (s *AddressService) Update(ctx context.Context, userID, id int64, req requestresponse.UpdateAddressRequest) (*model.Address, error) {
	address, err := s.addressRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, apperror.ErrAddressNotFound
	}

	setIfPresent(&address.Street, req.Street)
	setIfPresent(&address.Number, req.Number)
	setIfPresent(&address.District, req.District)
	setIfPresent(&address.City, req.City)
	setIfPresent(&address.State, req.State)
	setIfPresent(&address.ZipCode, req.ZipCode)

	return s.addressRepository.Update(ctx, s.db, address)
}

func (s *AddressService) Delete(ctx context.Context, userID, id int64) error {
	return s.addressRepository.Delete(ctx, s.db, id, userID)
}

func (s *AddressService) ListMine(ctx context.Context, userID int64) ([]model.Address, error) {
	return s.addressRepository.ListByUser(ctx, s.db, userID)
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
