package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile UserProfile
		field   string
	}{
		{name: "empty profile", profile: UserProfile{}},
		{name: "valid measurements", profile: UserProfile{Weight: Float(70), Height: Float(175)}},
		{name: "zero weight allowed", profile: UserProfile{Weight: Float(0)}},
		{name: "negative weight", profile: UserProfile{Weight: Float(-1)}, field: "weight"},
		{name: "negative height", profile: UserProfile{Height: Float(-170)}, field: "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
			assert.Contains(t, invalid.Message, "negative")
		})
	}
}

func TestNutritionRequest_Validate_NegativeHeight(t *testing.T) {
	req := NutritionRequest{Height: Float(-5)}
	err := req.Validate()
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "height")
}

func TestPredictRequest_Validate_UsesProfile(t *testing.T) {
	req := PredictRequest{UserProfile: UserProfile{Weight: Float(-3)}}
	assert.True(t, IsInvalidInput(req.Validate()))
}

func TestDecodeJSON_NonNumericValue(t *testing.T) {
	var req PredictRequest
	err := DecodeJSON(strings.NewReader(`{"metrics": {"heartRate": "fast"}}`), &req)
	require.Error(t, err)

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "metrics.heartRate", invalid.Field)
}

func TestDecodeJSON_SyntaxErrorIsNotInvalidInput(t *testing.T) {
	var req PredictRequest
	err := DecodeJSON(strings.NewReader(`{ not json`), &req)
	require.Error(t, err)
	assert.False(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "failed to decode JSON")
}

func TestDecodeJSON_Valid(t *testing.T) {
	var req NutritionRequest
	err := DecodeJSON(strings.NewReader(`{"age": 40, "weight": 82.5, "healthConditions": ["Diabetes"]}`), &req)
	require.NoError(t, err)
	require.NotNil(t, req.Age)
	assert.Equal(t, 40, *req.Age)
	assert.Equal(t, 82.5, *req.Weight)
	assert.Equal(t, []string{"Diabetes"}, req.HealthConditions)
	assert.Nil(t, req.StressLevel)
}
