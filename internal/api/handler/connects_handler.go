package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/core/ports"
)

// HeaderIdempotencyKey makes a retried mutation return the original result.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

// ConnectsHandler handles HTTP requests for the connects ledger.
type ConnectsHandler struct {
	service ports.LedgerService
}

func NewConnectsHandler(service ports.LedgerService) *ConnectsHandler {
	return &ConnectsHandler{service: service}
}

// Balance handles GET /v1/connects/balance.
//
// @Summary      Get the caller's connects balance
// @Tags         connects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  balanceResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/connects/balance [get]
func (h *ConnectsHandler) Balance(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	available, err := h.service.GetBalance(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, balanceResponse{Available: available})
}

// Deduct handles POST /v1/connects/deduct.
//
// @Summary      Spend connects
// @Description  Debits the caller's ledger. Send an Idempotency-Key header to make retries safe.
// @Tags         connects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Client-generated request key"
// @Param        body             body      mutationRequest  true   "Amount and reason"
// @Success      200              {object}  mutationResponse
// @Failure      400              {object}  errorResponse
// @Failure      402              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      503              {object}  errorResponse
// @Router       /v1/connects/deduct [post]
func (h *ConnectsHandler) Deduct(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}
	in, err := mutationInput(c, uid)
	if err != nil {
		return err
	}

	res, err := h.service.Deduct(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMutationResponse(res))
}

// Add handles POST /v1/admin/connects/:uid/add.
//
// @Summary      Credit connects to a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid              path      string           true   "Target user id"
// @Param        Idempotency-Key  header    string           false  "Client-generated request key"
// @Param        body             body      mutationRequest  true   "Amount and reason"
// @Success      200              {object}  mutationResponse
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      503              {object}  errorResponse
// @Router       /v1/admin/connects/{uid}/add [post]
func (h *ConnectsHandler) Add(c echo.Context) error {
	uid := strings.TrimSpace(c.Param("uid"))
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "uid is required")
	}
	in, err := mutationInput(c, uid)
	if err != nil {
		return err
	}

	res, err := h.service.Add(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMutationResponse(res))
}

// Cost handles GET /v1/connects/cost?budget=.
//
// @Summary      Connects charged for a proposal
// @Tags         connects
// @Produce      json
// @Security     BearerAuth
// @Param        budget  query     int  true  "Job budget"
// @Success      200     {object}  costResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/connects/cost [get]
func (h *ConnectsHandler) Cost(c echo.Context) error {
	budget, err := strconv.ParseInt(c.QueryParam("budget"), 10, 64)
	if err != nil || budget < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "budget must be a non-negative integer")
	}
	return c.JSON(http.StatusOK, costResponse{Budget: budget, Cost: h.service.ProposalCost(budget)})
}

func mutationInput(c echo.Context, uid string) (ports.MutationInput, error) {
	var req mutationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return ports.MutationInput{}, err
	}
	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLen {
		return ports.MutationInput{}, echo.NewHTTPError(http.StatusBadRequest, "idempotency key too long")
	}
	return ports.MutationInput{
		UID:            uid,
		Amount:         req.Amount,
		Reason:         req.Reason,
		IdempotencyKey: key,
	}, nil
}
