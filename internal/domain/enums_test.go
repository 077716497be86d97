package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForHead(t *testing.T) {
	tests := []struct {
		head DonationHead
		tier DonationTier
	}{
		{HeadPMNationalReliefFund, TierFullNoLimit},
		{HeadPMCaresFund, TierFullNoLimit},
		{HeadJNMemorialFund, TierHalfNoLimit},
		{HeadGovtFamilyPlanning, TierFullWithLimit},
		{HeadCharitableInstitution, TierHalfWithLimit},
	}
	for _, tt := range tests {
		tier, err := TierForHead(tt.head)
		require.NoError(t, err)
		assert.Equal(t, tt.tier, tier, "head %s", tt.head)
	}

	_, err := TierForHead("LOCAL_CRICKET_CLUB")
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, RegimeOld.Valid())
	assert.True(t, RegimeNew.Valid())
	assert.False(t, Regime("BOTH").Valid())

	assert.True(t, CityMetro.Valid())
	assert.False(t, CityCategory("VILLAGE").Valid())

	assert.True(t, OccupancyLetOut.Valid())
	assert.False(t, Occupancy("").Valid())

	assert.True(t, EncashmentAtRetirement.Valid())
	assert.False(t, LeaveEncashmentOccasion("RESIGNATION").Valid())

	assert.True(t, RelationChild.Valid())
	assert.False(t, DisabilityRelation("FRIEND").Valid())
}

func TestAgeBandFor(t *testing.T) {
	assert.Equal(t, AgeBandBelow60, AgeBandFor(34, 60, 80))
	assert.Equal(t, AgeBandBelow60, AgeBandFor(59, 60, 80))
	assert.Equal(t, AgeBand60To79, AgeBandFor(60, 60, 80))
	assert.Equal(t, AgeBand60To79, AgeBandFor(79, 60, 80))
	assert.Equal(t, AgeBand80Plus, AgeBandFor(80, 60, 80))
}
