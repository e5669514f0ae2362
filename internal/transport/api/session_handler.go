package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionSvs SessionServicer
}

func NewSessionHandler(sessionSvs SessionServicer) *SessionHandler {
	return &SessionHandler{
		sessionSvs: sessionSvs,
	}
}

// Create POST SessionRoute. Выпускает токен сессии для текущего клиента. Токен можно передавать вместо
// заголовка taxId в Authorization: Bearer <token>.
func (h *SessionHandler) Create(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	token, err := h.sessionSvs.Issue(ctx, customer.ID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
