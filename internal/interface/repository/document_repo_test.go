package repository

import (
	"testing"
	"time"

	"uavops-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Update replaces the whole domain field block via $set, so every
// caller-writable field must survive marshaling even at its zero value.
// A field dropped here would leave the stored value in place when a caller
// clears it.

func TestFlattenKeepsClearedFields(t *testing.T) {
	t.Run("drone fields", func(t *testing.T) {
		set, err := flatten(entity.DroneFields{Name: "Mavic 3"})
		require.NoError(t, err)

		assert.Equal(t, "Mavic 3", set["name"])
		for _, key := range []string{"imageUrl", "userManualUrl", "insuranceExpiry", "inventoryCode", "batteryType"} {
			_, ok := set[key]
			assert.True(t, ok, "cleared field %s must appear in $set", key)
		}
		assert.Equal(t, "", set["imageUrl"])
		assert.Equal(t, "", set["userManualUrl"])
		assert.Nil(t, set["insuranceExpiry"])
	})

	t.Run("flight fields", func(t *testing.T) {
		set, err := flatten(entity.FlightFields{UserID: "u-1", Date: "2026-08-01"})
		require.NoError(t, err)

		for _, key := range []string{"comments", "category", "activityType", "startTime", "endTime"} {
			_, ok := set[key]
			assert.True(t, ok, "cleared field %s must appear in $set", key)
		}
		assert.Equal(t, "", set["comments"])
	})

	t.Run("checklist fields", func(t *testing.T) {
		set, err := flatten(entity.ChecklistFields{Title: "Pre-flight"})
		require.NoError(t, err)

		_, ok := set["imageUrl"]
		assert.True(t, ok, "cleared imageUrl must appear in $set")
		assert.Equal(t, "", set["imageUrl"])
	})

	t.Run("user fields", func(t *testing.T) {
		expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		set, err := flatten(entity.UserFields{Firstname: "Jo", InsuranceExpiry: &expiry})
		require.NoError(t, err)

		for _, key := range []string{"insuranceExpiry", "qualificationsExpiry", "phone", "pilotNumber"} {
			_, ok := set[key]
			assert.True(t, ok, "field %s must appear in $set", key)
		}
		assert.NotNil(t, set["insuranceExpiry"])
		assert.Nil(t, set["qualificationsExpiry"])
	})
}

func TestNewMetaStampsRecord(t *testing.T) {
	meta := newMeta("u-1")

	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "u-1", meta.CreatedBy)
	assert.Equal(t, "u-1", meta.UpdatedBy)
	assert.Equal(t, meta.CreatedAt, meta.UpdatedAt)
	assert.False(t, meta.IsDeleted)
	assert.Nil(t, meta.DeletedAt)

	// Ids order lexicographically by creation time.
	later := newMeta("u-1")
	assert.Less(t, meta.ID, later.ID)
}
