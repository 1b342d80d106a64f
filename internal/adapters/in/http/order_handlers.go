package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/user"
	"bookstore/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders - places an order for the
// authenticated user.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		bookID, err := kernel.UUIDFromString(item.BookID)
		if err != nil {
			return badRequest(ctx, "invalid book id: "+item.BookID)
		}
		lines = append(lines, commands.OrderLine{BookID: bookID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		claims.UserID,
		request.ShippingAddress,
		request.BillingAddress,
		lines,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
// Customers can only read their own orders; admins can read any.
func (s *Server) GetOrder(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if !result.UserID.IsEqual(claims.UserID) && claims.Role != user.RoleAdmin.String() {
		return forbidden(ctx)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetOrdersByUser handles GET /api/v1/users/:userId/orders - lists a
// user's orders, most recent first. Customers can only list their own.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	if !userID.IsEqual(claims.UserID) && claims.Role != user.RoleAdmin.String() {
		return forbidden(ctx)
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllOrders handles GET /api/v1/orders - lists every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderId/status -
// advances or cancels an order. Admins may request any transition;
// customers may only cancel their own orders.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request changeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if claims.Role != user.RoleAdmin.String() {
		query, queryErr := queries.NewGetOrderQuery(orderID)
		if queryErr != nil {
			return respondError(ctx, queryErr)
		}

		existing, queryErr := s.getOrderHandler.Handle(ctx.Request().Context(), query)
		if queryErr != nil {
			return respondError(ctx, queryErr)
		}

		if !mayChangeStatus(claims, existing.UserID, status) {
			return forbidden(ctx)
		}
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes an order
// record. Stock is not restored; cancellation is the path for that.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// mayChangeStatus decides whether the caller may request the transition.
// Admins may request anything; a customer may only cancel an order they
// own. Fulfillment transitions stay admin work.
func mayChangeStatus(claims auth.Claims, ownerID kernel.UUID, target order.Status) bool {
	if claims.Role == user.RoleAdmin.String() {
		return true
	}
	return target == order.Cancelled && ownerID.IsEqual(claims.UserID)
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, Error{
		Code:    http.StatusForbidden,
		Message: "access denied",
	})
}

func toOrderResponse(result queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = orderItemResponse{
			ID:       item.ID.String(),
			BookID:   item.BookID.String(),
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return orderResponse{
		ID:              result.ID.String(),
		UserID:          result.UserID.String(),
		OrderDate:       result.OrderDate,
		Status:          result.Status,
		ShippingAddress: result.ShippingAddress,
		BillingAddress:  result.BillingAddress,
		TotalAmount:     result.TotalAmount,
		Items:           items,
	}
}

func toOrderResponses(results []queries.OrderResponse) []orderResponse {
	response := make([]orderResponse, len(results))
	for i, result := range results {
		response[i] = toOrderResponse(result)
	}
	return response
}
