package service

import (
	"context"
	"fmt"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	db                  *config.Database
	orderRepository     ports.OrderRepository
	orderItemRepository ports.OrderItemRepository
	itemRepository      ports.ItemRepository
	addressRepository   ports.AddressRepository
	userRepository      ports.UserRepository
	notifications       ports.NotificationService
	publisher           ports.EventPublisher
	now                 func() time.Time
	log                 *logrus.Entry
}

func NewOrderService(
	db *config.Database,
	orderRepository ports.OrderRepository,
	orderItemRepository ports.OrderItemRepository,
	itemRepository ports.ItemRepository,
	addressRepository ports.AddressRepository,
	userRepository ports.UserRepository,
	notifications ports.NotificationService,
	publisher ports.EventPublisher,
) *OrderService {
	return &OrderService{
		db:                  db,
		orderRepository:     orderRepository,
		orderItemRepository: orderItemRepository,
		itemRepository:      itemRepository,
		addressRepository:   addressRepository,
		userRepository:      userRepository,
		notifications:       notifications,
		publisher:           publisher,
		now:                 time.Now,
		log:                 logrus.WithField("component", "orders"),
	}
}

// Create : оформляет заказ. Цены позиций фиксируются на момент оформления,
// заказ и его строки пишутся одной транзакцией. Уведомления администраторам
// и событие в брокер отправляются после коммита и не влияют на результат.
func (s *OrderService) Create(ctx context.Context, actor *model.User, req requestresponse.CreateOrderRequest) (*model.Order, error) {
	clientID := actor.ID
	if req.ClientID != 0 && req.ClientID != actor.ID {
		if !actor.IsAdmin() {
			return nil, apperror.ErrForbidden
		}
		clientID = req.ClientID
	}

	paymentMethod := model.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.Valid() {
		return nil, apperror.Validation("invalid request", map[string]string{"paymentMethod": "oneof"})
	}
	if len(req.Items) == 0 {
		return nil, apperror.Validation("invalid request", map[string]string{"items": "min"})
	}

	address, err := s.addressRepository.FindByID(ctx, s.db, req.AddressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != clientID {
		return nil, apperror.ErrAddressNotFound
	}

	lines, total, err := s.priceLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	var order *model.Order
	err = s.db.WithTx(ctx, func(tx sqlx.ExtContext) error {
		created, err := s.orderRepository.Create(ctx, tx, &model.Order{
			ClientID:         clientID,
			AddressID:        address.ID,
			Status:           model.OrderStatusPending,
			PaymentMethod:    paymentMethod,
			TotalAmountCents: total,
		})
		if err != nil {
			return err
		}

		created.Items = make([]model.OrderItem, 0, len(lines))
		for _, line := range lines {
			line.OrderID = created.ID
			saved, err := s.orderItemRepository.Create(ctx, tx, &line)
			if err != nil {
				return err
			}
			created.Items = append(created.Items, *saved)
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"order_id": order.ID, "client_id": order.ClientID}).Info("заказ создан")

	s.notifyAdmins(ctx, order)
	s.publish(ctx, model.OrderEventCreated, order)

	return order, nil
}

func (s *OrderService) ListAll(ctx context.Context, page, pageSize int) (*model.Page[model.Order], error) {
	page, pageSize = model.NormalizePage(page, pageSize, model.DefaultPageSize, model.MaxPageSize)

	orders, total, err := s.orderRepository.List(ctx, s.db, model.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, orders, page, pageSize, total)
}

// ListByClient : клиент видит только свои заказы
func (s *OrderService) ListByClient(ctx context.Context, actor *model.User, clientID int64, page, pageSize int) (*model.Page[model.Order], error) {
	if !actor.CanAccess(clientID) {
		return nil, apperror.ErrForbidden
	}

	page, pageSize = model.NormalizePage(page, pageSize, model.DefaultPageSize, model.MaxPageSize)

	orders, total, err := s.orderRepository.ListByClient(ctx, s.db, clientID, model.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, orders, page, pageSize, total)
}

func (s *OrderService) GetByID(ctx context.Context, actor *model.User, id int64) (*model.Order, error) {
	order, err := s.orderRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(order.ClientID) {
		return nil, apperror.ErrForbidden
	}

	if order.Items, err = s.orderItemRepository.ListByOrder(ctx, s.db, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus : только администратор, он же записывается как подтвердивший
func (s *OrderService) UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.OrderStatus) (*model.Order, error) {
	if !actor.IsAdmin() {
		return nil, apperror.ErrForbidden
	}
	if !status.Valid() {
		return nil, apperror.Validation("invalid request", map[string]string{"status": "oneof"})
	}

	order, err := s.orderRepository.UpdateStatus(ctx, s.db, id, status, actor.ID)
	if err != nil {
		return nil, err
	}

	if order.Items, err = s.orderItemRepository.ListByOrder(ctx, s.db, order.ID); err != nil {
		return nil, err
	}

	_, err = s.notifications.CreateAndEmit(ctx, order.ClientID,
		"Pedido Atualizado",
		fmt.Sprintf("Seu pedido #%d foi atualizado.", order.ID),
		model.JSONMap{"orderId": order.ID, "status": order.Status},
	)
	if err != nil {
		s.log.WithError(err).WithField("order_id", order.ID).Warn("не удалось уведомить клиента")
	}

	s.publish(ctx, model.OrderEventStatusChanged, order)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orderRepository.Delete(ctx, s.db, id)
}

// priceLines : строки заказа с зафиксированными ценами и итоговая сумма
func (s *OrderService) priceLines(ctx context.Context, requested []requestresponse.OrderItemRequest) ([]model.OrderItem, int64, error) {
	ids := make([]int64, 0, len(requested))
	seen := make(map[int64]struct{}, len(requested))
	for _, r := range requested {
		if _, ok := seen[r.ItemID]; !ok {
			seen[r.ItemID] = struct{}{}
			ids = append(ids, r.ItemID)
		}
	}

	items, err := s.itemRepository.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]model.OrderItem, 0, len(requested))
	var total int64
	for i, r := range requested {
		field := fmt.Sprintf("items[%d]", i)
		if r.Quantity <= 0 {
			return nil, 0, apperror.Validation("invalid request", map[string]string{field + ".quantity": "gt"})
		}

		item, ok := items[r.ItemID]
		if !ok {
			return nil, 0, apperror.ErrItemNotFound
		}
		if !item.Available {
			return nil, 0, apperror.Validation("item is not available", map[string]string{field + ".itemId": "unavailable"})
		}

		subtotal := item.UnitPriceCents * int64(r.Quantity)
		total += subtotal
		lines = append(lines, model.OrderItem{
			ItemID:         item.ID,
			Quantity:       r.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			SubtotalCents:  subtotal,
		})
	}

	return lines, total, nil
}

func (s *OrderService) page(ctx context.Context, orders []model.Order, page, pageSize, total int) (*model.Page[model.Order], error) {
	for i := range orders {
		items, err := s.orderItemRepository.ListByOrder(ctx, s.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return &model.Page[model.Order]{
		Data: orders,
		Meta: model.NewPageMeta(page, pageSize, total),
	}, nil
}

func (s *OrderService) notifyAdmins(ctx context.Context, order *model.Order) {
	admins, err := s.userRepository.ListAdmins(ctx, s.db)
	if err != nil {
		s.log.WithError(err).WithField("order_id", order.ID).Warn("не удалось получить администраторов")
		return
	}

	body := fmt.Sprintf("Um novo pedido #%d foi feito pelo cliente #%d.", order.ID, order.ClientID)
	for _, admin := range admins {
		_, err := s.notifications.CreateAndEmit(ctx, admin.ID, "Novo Pedido Recebido", body,
			model.JSONMap{"orderId": order.ID, "clientId": order.ClientID},
		)
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"order_id": order.ID,
				"admin_id": admin.ID,
			}).Warn("не удалось уведомить администратора")
		}
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *model.Order) {
	err := s.publisher.Publish(ctx, model.OrderEvent{
		Type:             eventType,
		OrderID:          order.ID,
		ClientID:         order.ClientID,
		Status:           order.Status,
		TotalAmountCents: order.TotalAmountCents,
		OccurredAt:       s.now().UTC(),
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Warn("не удалось опубликовать событие заказа")
	}
}
