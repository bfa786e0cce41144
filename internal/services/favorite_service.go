package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "nomix/internal/errors"
	"nomix/internal/models"
)

// favoriteService manages the (user, symbol) bookmark set.
type favoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteServicer.
func NewFavoriteService(db *gorm.DB) FavoriteServicer {
	return &favoriteService{db: db}
}

// AddFavorite inserts the pair if it is absent. Adding an existing pair is a
// no-op; the composite primary key settles concurrent adds.
func (s *favoriteService) AddFavorite(userID uint, symbol string) error {
	symbol = normalizeSymbol(symbol)
	if userID == 0 || symbol == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id and stock_symbol are required")
	}

	if err := s.db.Select("id").First(&models.User{}, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var companies int64
	if err := s.db.Model(&models.Company{}).Where("symbol = ?", symbol).Count(&companies).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if companies == 0 {
		return apperrors.ErrCompanyNotFound
	}

	fav := &models.Favorite{UserID: userID, StockSymbol: symbol}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RemoveFavorite deletes the pair. Removing an absent pair is not an error.
func (s *favoriteService) RemoveFavorite(userID uint, symbol string) error {
	symbol = normalizeSymbol(symbol)
	if userID == 0 || symbol == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id and stock_symbol are required")
	}

	err := s.db.Where("user_id = ? AND stock_symbol = ?", userID, symbol).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListFavorites returns the user's bookmarked symbols in alphabetical order.
func (s *favoriteService) ListFavorites(userID uint) ([]string, error) {
	symbols := []string{}
	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("stock_symbol ASC").
		Pluck("stock_symbol", &symbols).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return symbols, nil
}
