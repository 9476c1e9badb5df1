package handler

import (
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"go.uber.org/zap"
)

// OrderDetailHandler serves the order detail CRUD surface
type OrderDetailHandler struct {
	*EntityHandler[store.OrderDetail, dto.OrderDetailView]
}

// NewOrderDetailHandler creates a new OrderDetailHandler. Detail lines are
// leaves of the dependency graph, so deletion is always allowed.
func NewOrderDetailHandler(
	repo store.OrderDetailRepository,
	m *mapper.Config,
	log *zap.Logger,
) *OrderDetailHandler {
	return &OrderDetailHandler{NewEntityHandler(
		"OrderDetail", "/orderdetails",
		repo, m.OrderDetail,
		(*store.OrderDetail).GetID,
		func(id int64) *store.OrderDetail { return &store.OrderDetail{ID: id} },
		nil, log,
	)}
}
