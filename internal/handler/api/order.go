package api

import (
	"net/http"

	reqdto "order-ledger/internal/handler/dto/request"
	resdto "order-ledger/internal/handler/dto/response"
	"order-ledger/internal/handler/httperr"
	"order-ledger/internal/handler/middleware"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/commands"
	"order-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Place an order as a signed-in customer or a guest. An optional voucher is redeemed and incentives are settled.
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID for safe retries"
// @Param request body reqdto.PlaceOrderRequest true "Place order request"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Success 200 {object} resdto.PlaceOrderResponse "Replayed idempotent request"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var key *uuid.UUID
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
			return
		}
		key = &parsed
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.cmds.PlaceOrder(c.Request.Context(), req.ToInput(userID, key))
	if err != nil {
		status, msg := orderErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/orders/"+result.OrderID.String())
	c.JSON(status, resdto.FromPlaceOrderResult(result))
}

// @Summary Update order status
// @Description Move an order through its lifecycle. Cancelling retracts loyalty rewards.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusUpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err = h.cmds.UpdateOrderStatus(c.Request.Context(), commands.UpdateOrderStatusInput{
		ActorID:   actorID,
		ActorRole: role,
		OrderID:   id,
		Target:    req.Status,
	})
	if err != nil {
		status, msg := orderErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.StatusUpdateResponse{
		Success: true,
		OrderID: id.String(),
		Status:  req.Status,
	})
}

// @Summary Get order
// @Description Get an order by ID. Customers see their own orders; admins see all.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role)
	if err != nil {
		// Foreign orders look missing so their IDs cannot be probed.
		if errs.Is(err, queries.ErrOrderNotFound) || errs.Is(err, queries.ErrOrderAccess) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func orderErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, commands.ErrVoucherNotFound):
		return http.StatusNotFound, "Voucher not found"
	case errs.Is(err, commands.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errs.Is(err, commands.ErrVoucherExhausted):
		return http.StatusConflict, "Voucher usage limit reached"
	case errs.Is(err, commands.ErrVoucherRedemptionConflict):
		return http.StatusConflict, "Voucher redemption conflict"
	case errs.Is(err, commands.ErrVoucherAlreadyRedeemed):
		return http.StatusConflict, "Voucher already used"
	case errs.Is(err, commands.ErrIllegalTransition):
		return http.StatusConflict, "Status transition not allowed"
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		return http.StatusConflict, "Request already in progress"
	case errs.Is(err, commands.ErrIdempotencyKeyReuse):
		return http.StatusUnprocessableEntity, "Idempotency-Key reused with a different request"
	case errs.Is(err, commands.ErrAuthorization):
		return http.StatusForbidden, "Forbidden"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
