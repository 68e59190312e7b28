package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

func TestPreference_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pref    domain.Preference
		wantErr bool
	}{
		{
			name:    "valid selection",
			pref:    domain.Preference{HomeCountryKey: "uk", ComparisonCountryKey: "germany"},
			wantErr: false,
		},
		{
			name:    "same country on both sides is allowed",
			pref:    domain.Preference{HomeCountryKey: "usa", ComparisonCountryKey: "usa"},
			wantErr: false,
		},
		{
			name:    "unknown home country",
			pref:    domain.Preference{HomeCountryKey: "atlantis", ComparisonCountryKey: "india"},
			wantErr: true,
		},
		{
			name:    "unknown comparison country",
			pref:    domain.Preference{HomeCountryKey: "usa", ComparisonCountryKey: "narnia"},
			wantErr: true,
		},
		{
			name:    "empty keys",
			pref:    domain.Preference{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pref.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultPreference(t *testing.T) {
	pref := domain.DefaultPreference()

	assert.NoError(t, pref.Validate())
	assert.Equal(t, "usa", pref.HomeCountryKey)
	assert.Equal(t, "india", pref.ComparisonCountryKey)
}

func TestProfileFields(t *testing.T) {
	values := domain.DefaultProfileValues()

	assert.Len(t, values, len(domain.ProfileFields))
	for _, field := range domain.ProfileFields {
		assert.True(t, domain.IsProfileField(field))
		assert.Zero(t, values[field])
	}
	assert.False(t, domain.IsProfileField("petsOwned"))
	assert.False(t, domain.IsProfileField(""))
}
