package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/finapi/internal/service"
)

type AccountHandler struct {
	customerSvs CustomerServicer
}

func NewAccountHandler(customerSvs CustomerServicer) *AccountHandler {
	return &AccountHandler{
		customerSvs: customerSvs,
	}
}

type AccountCreateParams struct {
	TaxID string `binding:"required,max_bytes=32"  json:"taxId"`
	Name  string `binding:"required,max_bytes=255" json:"name"`
}

// Create POST AccountRoute. Регистрирует клиента. Заголовок taxId не требуется.
func (h *AccountHandler) Create(c *gin.Context) {
	var params AccountCreateParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, err := h.customerSvs.Register(ctx, service.RegisterCustomerArgs{
		TaxID: params.TaxID,
		Name:  params.Name,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.AbortWithStatus(http.StatusCreated)
}

type AccountUpdateParams struct {
	Name string `binding:"required,max_bytes=255" json:"name"`
}

// Update PUT AccountRoute. Меняет имя текущего клиента.
func (h *AccountHandler) Update(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var params AccountUpdateParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.customerSvs.UpdateName(ctx, customer.ID, params.Name); err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.AbortWithStatus(http.StatusCreated)
}

// Show GET AccountRoute.
func (h *AccountHandler) Show(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

// Delete DELETE AccountRoute. Удаляет текущего клиента и отдает список оставшихся.
func (h *AccountHandler) Delete(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, err := h.customerSvs.Delete(ctx, customer.ID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i := range customers {
		response[i] = newCustomerResponse(&customers[i])
	}
	c.JSON(http.StatusOK, response)
}
