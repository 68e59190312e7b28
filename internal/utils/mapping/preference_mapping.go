package mapping

import (
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/models"
)

// ToModelPreference converts a domain Preference to a model Preference
func ToModelPreference(d domain.Preference) models.Preference {
	return models.Preference{
		ID:                   1,
		HomeCountryKey:       d.HomeCountryKey,
		ComparisonCountryKey: d.ComparisonCountryKey,
		UpdatedAt:            d.UpdatedAt,
	}
}

// ToDomainPreference converts a model Preference to a domain Preference
func ToDomainPreference(m models.Preference) domain.Preference {
	return domain.Preference{
		HomeCountryKey:       m.HomeCountryKey,
		ComparisonCountryKey: m.ComparisonCountryKey,
		UpdatedAt:            m.UpdatedAt,
	}
}
