package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nomix/internal/errors"
	"nomix/internal/services"
)

// FavoriteHandler handles a user's favorite symbols.
type FavoriteHandler struct {
	favoriteService services.FavoriteServicer
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService services.FavoriteServicer) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteRequest names one (user, symbol) pair.
type FavoriteRequest struct {
	UserID      uint   `json:"user_id" binding:"required,min=1"`
	StockSymbol string `json:"stock_symbol" binding:"required,ticker"`
}

// AddFavorite marks a symbol as a favorite
// @Summary     Add a favorite
// @Description Adds the symbol to the user's favorites. Adding twice is a no-op.
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FavoriteRequest true "User and symbol"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     403 {object} ErrorResponse "Token belongs to another user"
// @Failure     404 {object} ErrorResponse "Unknown user or company"
// @Router      /favorites/add [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	req, ok := h.bindFavorite(c)
	if !ok {
		return
	}

	if err := h.favoriteService.AddFavorite(req.UserID, req.StockSymbol); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Added to favorites"})
}

// RemoveFavorite unmarks a favorite symbol
// @Summary     Remove a favorite
// @Description Removes the symbol from the user's favorites. Removing an absent pair succeeds.
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FavoriteRequest true "User and symbol"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     403 {object} ErrorResponse "Token belongs to another user"
// @Router      /favorites/remove [post]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	req, ok := h.bindFavorite(c)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(req.UserID, req.StockSymbol); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Removed from favorites"})
}

// ListFavorites returns a user's favorite symbols
// @Summary     List favorites
// @Tags        favorites
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path int true "User ID"
// @Success     200 {array}  string
// @Failure     400 {object} ErrorResponse "Invalid user id"
// @Failure     403 {object} ErrorResponse "Token belongs to another user"
// @Router      /favorites/{user_id} [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, err := parsePathID(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := authorizeUser(c, userID); err != nil {
		respondWithError(c, err)
		return
	}

	symbols, err := h.favoriteService.ListFavorites(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, symbols)
}

func (h *FavoriteHandler) bindFavorite(c *gin.Context) (*FavoriteRequest, bool) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return nil, false
	}
	if err := authorizeUser(c, req.UserID); err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return &req, true
}
