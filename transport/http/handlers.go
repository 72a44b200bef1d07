package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/service"
)

// AuthHandlers contains HTTP handlers for the local session facade
type AuthHandlers struct {
	authService *service.AuthService
	sessions    *core.SessionStore
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authService *service.AuthService, sessions *core.SessionStore) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		sessions:    sessions,
	}
}

// Login handles the login request
func (h *AuthHandlers) Login(c *gin.Context) {
	var req struct {
		Owner string `json:"owner" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !common.IsHexAddress(req.Owner) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner address"})
		return
	}

	ok, err := h.authService.Login(c.Request.Context(), common.HexToAddress(req.Owner))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization rejected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": h.sessions.Account()})
}

// Register handles account registration followed by login
func (h *AuthHandlers) Register(c *gin.Context) {
	var req struct {
		Owner        string `json:"owner" binding:"required"`
		EmailAddress string `json:"emailAddress" binding:"required"`
		AvatarURL    string `json:"avatarURL"`
		Name         string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !common.IsHexAddress(req.Owner) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner address"})
		return
	}

	ok, err := h.authService.Register(c.Request.Context(), common.HexToAddress(req.Owner), req.EmailAddress, req.AvatarURL, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Account creation rejected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": h.sessions.Account()})
}

// Logout handles session logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session returns the current session state
func (h *AuthHandlers) Session(c *gin.Context) {
	account := h.sessions.Account()

	response := gin.H{"account": account}
	if linked, ok := h.sessions.LinkedAccount(); ok {
		response["linkedAccount"] = linked
	}
	if address, ok := h.sessions.Address(); ok {
		response["address"] = address
	}

	c.JSON(http.StatusOK, response)
}
