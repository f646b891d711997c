package hhts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHouseholds(t *testing.T) {
	tr := testTransformer(t)

	sdrts := rawFrame(householdSdrtsCols,
		map[string]string{
			"hhid": "1", "sample_segment": "Regular", "hhgroup": "3",
			"callcenter_recruit": "0", "language_pref": "1", "hhsize": "2",
			"home_lat": "32.7157", "home_lng": "-117.1611",
			"hh_init_wt": "1.5", "hh_weight_4x": "2.25",
		},
	)
	at := rawFrame(householdAtCols,
		map[string]string{"hhid": "900", "hhgroup": "5", "hhsize": "1", "language_pref": "97"},
	)

	got, err := buildHouseholds(sdrts, at, tr)
	require.NoError(t, err)
	assert.Equal(t, "households", got.Name)
	assert.Equal(t, householdColumns, got.F.Columns())
	require.Equal(t, 2, got.F.Len())

	assert.Equal(t, "Regular", got.F.Get(0, "sample_segment"))
	assert.Equal(t, "Group 3: Online diary only", got.F.Get(0, "sample_group"))
	// The online diary group has no rMove participants by definition.
	assert.Equal(t, notApplicable, got.F.Get(0, "number_rmove_participants"))
	assert.Equal(t, "Recruit survey completed online", got.F.Get(0, "recruit_survey_where"))
	assert.Equal(t, "2", got.F.Get(0, "persons"))
	assert.True(t, strings.HasPrefix(got.F.Get(0, "shape"), "POINT"))
	assert.Equal(t, "1.5", got.F.Get(0, "weight_household_initial"))
	assert.Equal(t, "2.25", got.F.Get(0, "weight_household_4x"))

	// The intercept extract never carries the segment, the call center
	// flag, or the weights; they are back-filled on the merge.
	assert.Equal(t, "AT segment", got.F.Get(1, "sample_segment"))
	assert.Equal(t, notApplicable, got.F.Get(1, "recruit_survey_where"))
	assert.Equal(t, "", got.F.Get(1, "weight_household_initial"))
	assert.Equal(t, "", got.F.Get(1, "weight_household_456x"))
	assert.Equal(t, "Other", got.F.Get(1, "language"))
	// language_other stays open only when the language was Other.
	assert.Equal(t, "", got.F.Get(1, "language_other"))
	assert.Equal(t, notApplicable, got.F.Get(0, "language_other"))
	assert.Equal(t, "", got.F.Get(1, "shape"))
}

func TestBuildHouseholdsRejectsDuplicateIDs(t *testing.T) {
	tr := testTransformer(t)

	sdrts := rawFrame(householdSdrtsCols,
		map[string]string{"hhid": "1", "sample_segment": "Regular"},
	)
	at := rawFrame(householdAtCols,
		map[string]string{"hhid": "1"},
	)

	_, err := buildHouseholds(sdrts, at, tr)
	require.ErrorIs(t, err, ErrDuplicateHousehold)
}
