package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "flash-sale-api/internal/handler/dto/request"
	resdto "flash-sale-api/internal/handler/dto/response"
	"flash-sale-api/internal/handler/httperr"
	"flash-sale-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleUseCase usecase.SaleUseCase
}

func NewSaleHandler(saleUseCase usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{
		saleUseCase: saleUseCase,
	}
}

// @Summary List sales
// @Description List flash-sale items, newest first
// @Tags sales
// @Produce json
// @Param offset query int false "Paging offset" default(0)
// @Param limit query int false "Page size" default(4)
// @Success 200 {array} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	var req reqdto.ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}

	sales, err := h.saleUseCase.ListSales(c.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.SaleResponse, len(sales))
	for i, rm := range sales {
		response[i] = resdto.FromSaleRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get sale
// @Description Get a flash-sale item by id
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := h.saleID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}

	saleRM, err := h.saleUseCase.GetSale(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSaleRM(saleRM))
}

// @Summary Expose sale
// @Description Hand out the execution token when the sale window is open;
// @Description otherwise return the server time and window bounds
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} resdto.ExposureResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sales/{id}/exposure [get]
func (h *SaleHandler) Expose(c *gin.Context) {
	id, err := h.saleID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}

	exposure, err := h.saleUseCase.Expose(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExposureRM(exposure))
}

// @Summary Execute sale
// @Description Attempt the purchase. Every named outcome (success, already
// @Description won, sale closed, invalid token) answers 200 with a state code
// @Description so clients can tell them apart; only unexpected failures are 500.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param request body reqdto.ExecuteSaleRequest true "Execution request"
// @Success 200 {object} resdto.ExecutionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} resdto.ExecutionResponse
// @Router /sales/{id}/execution [post]
func (h *SaleHandler) Execute(c *gin.Context) {
	id, err := h.saleID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}

	var req reqdto.ExecuteSaleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	win, err := h.saleUseCase.Execute(c.Request.Context(), id, req.RequesterID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			c.JSON(http.StatusOK, resdto.NewExecutionResponse(id, resdto.StateInvalidToken, nil))
		case errors.Is(err, usecase.ErrAlreadyWon):
			c.JSON(http.StatusOK, resdto.NewExecutionResponse(id, resdto.StateAlreadyWon, nil))
		case errors.Is(err, usecase.ErrSaleClosed):
			c.JSON(http.StatusOK, resdto.NewExecutionResponse(id, resdto.StateSaleClosed, nil))
		default:
			c.JSON(http.StatusInternalServerError, resdto.NewExecutionResponse(id, resdto.StateInternalErr, nil))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewExecutionResponse(id, resdto.StateSuccess, win))
}

func (h *SaleHandler) saleID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
