// Package profile stores the profile and the language selection of users.
package profile

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service reads and writes profiles.
type Service struct {
	db            *gorm.DB
	defaultLocale i18n.Locale
}

// New returns a profile service. defaultLocale is used for users that have
// not selected a locale.
func New(db *gorm.DB, defaultLocale i18n.Locale) *Service {
	if !defaultLocale.Valid() {
		defaultLocale = i18n.Default
	}

	return &Service{db: db, defaultLocale: defaultLocale}
}

// Patch is a partial profile update. Nil fields are left unchanged.
type Patch struct {
	Name          *string
	Phone         *string
	Village       *string
	MonthlyIncome *decimal.NullDecimal
	Locale        *i18n.Locale
}

// Get returns the profile of the user.
//
// Users without a stored profile get an empty one with the default locale.
func (s *Service) Get(ctx context.Context, userID string) (models.Profile, error) {
	p, _, err := s.find(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	if !p.Locale.Valid() {
		p.Locale = s.defaultLocale
	}

	return p, nil
}

// Update applies the patch to the user's profile and stores it.
func (s *Service) Update(ctx context.Context, userID string, patch Patch) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, models.ErrUserMissing
	}

	p, exists, err := s.find(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Village != nil {
		p.Village = *patch.Village
	}
	if patch.MonthlyIncome != nil {
		if patch.MonthlyIncome.Valid && patch.MonthlyIncome.Decimal.IsNegative() {
			return models.Profile{}, models.ErrIncomeNegative
		}
		p.MonthlyIncome = *patch.MonthlyIncome
	}
	if patch.Locale != nil {
		if !patch.Locale.Valid() {
			return models.Profile{}, models.ErrLocaleInvalid
		}
		p.Locale = *patch.Locale
	}

	// A concurrent first write can store the row between find and create,
	// the later write wins then
	if exists {
		err = s.db.WithContext(ctx).Save(&p).Error
	} else {
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error
	}
	if err != nil {
		return models.Profile{}, err
	}

	if !p.Locale.Valid() {
		p.Locale = s.defaultLocale
	}

	return p, nil
}

// Locale returns the locale the user selected, or the default locale if
// there is no selection.
func (s *Service) Locale(ctx context.Context, userID string) (i18n.Locale, error) {
	locale, _, err := s.Selected(ctx, userID)
	return locale, err
}

// Selected returns the locale the user selected. The boolean is false if
// the user has not selected a supported locale, the default locale is
// returned then.
func (s *Service) Selected(ctx context.Context, userID string) (i18n.Locale, bool, error) {
	p, exists, err := s.find(ctx, userID)
	if err != nil {
		return s.defaultLocale, false, err
	}

	if !exists || !p.Locale.Valid() {
		return s.defaultLocale, false, nil
	}

	return p.Locale, true, nil
}

// Default returns the locale for users without a selection.
func (s *Service) Default() i18n.Locale {
	return s.defaultLocale
}

// SetLocale persists the user's locale selection.
func (s *Service) SetLocale(ctx context.Context, userID string, locale i18n.Locale) error {
	_, err := s.Update(ctx, userID, Patch{Locale: &locale})
	return err
}

// find loads the profile. The boolean is false if none is stored.
func (s *Service) find(ctx context.Context, userID string) (models.Profile, bool, error) {
	var profiles []models.Profile

	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&profiles).Error
	if err != nil {
		return models.Profile{}, false, err
	}

	if len(profiles) == 0 {
		return models.Profile{UserID: userID}, false, nil
	}

	return profiles[0], true, nil
}
