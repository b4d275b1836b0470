package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepcam_backend/internals/features/church/members/model"
)

var importNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{
			name: "day-first with two-digit year",
			in:   "26/12/95",
			want: datePtr(1995, time.December, 26),
		},
		{
			name: "day-first with full year",
			in:   "26/12/1995",
			want: datePtr(1995, time.December, 26),
		},
		{
			name: "day and month only resolves to current year",
			in:   "26/12",
			want: datePtr(2025, time.December, 26),
		},
		{
			name: "day-month-name without year",
			in:   "26-Dec",
			want: datePtr(2025, time.December, 26),
		},
		{
			name: "day-month-name with year",
			in:   "26-Dec-95",
			want: datePtr(1995, time.December, 26),
		},
		{
			name: "empty yields nil",
			in:   "",
			want: nil,
		},
		{
			name: "literal nil yields nil",
			in:   "Nil",
			want: nil,
		},
		{
			name: "literal null yields nil",
			in:   "NULL",
			want: nil,
		},
		{
			name: "garbage yields nil not error",
			in:   "sometime last year",
			want: nil,
		},
		{
			name: "impossible month yields nil",
			in:   "26/13",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexibleDate(tt.in, importNow)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Year(), got.Year())
			assert.Equal(t, tt.want.Month(), got.Month())
			assert.Equal(t, tt.want.Day(), got.Day())
		})
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMapGender(t *testing.T) {
	assert.Equal(t, model.GenderMale, MapGender("M"))
	assert.Equal(t, model.GenderFemale, MapGender(" F "))
	assert.Equal(t, model.GenderOther, MapGender(""))
	assert.Equal(t, model.GenderOther, MapGender("Male"))
}

func TestMapMaritalStatus(t *testing.T) {
	assert.Equal(t, model.MaritalMarried, MapMaritalStatus("Married"))
	assert.Equal(t, model.MaritalWidowed, MapMaritalStatus("Widow"))
	assert.Equal(t, model.MaritalWidowed, MapMaritalStatus("Widowed"))
	// the rolls spell it both ways
	assert.Equal(t, model.MaritalSeparated, MapMaritalStatus("Seprated"))
	assert.Equal(t, model.MaritalSeparated, MapMaritalStatus("Separated"))
	assert.Equal(t, model.MaritalSingle, MapMaritalStatus("Single"))
	assert.Equal(t, model.MaritalSingle, MapMaritalStatus(""))
	assert.Equal(t, model.MaritalSingle, MapMaritalStatus("Engaged"))
}

func TestYearToDate(t *testing.T) {
	got := YearToDate("2014")
	require.NotNil(t, got)
	assert.Equal(t, 2014, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())

	assert.Nil(t, YearToDate(""))
	assert.Nil(t, YearToDate("yes"))
	assert.Nil(t, YearToDate("14"))
}

func TestMatchKeys(t *testing.T) {
	t.Run("phone outranks email", func(t *testing.T) {
		keys := MatchKeys("08031234567", "ade@example.com")
		require.Len(t, keys, 2)
		assert.Equal(t, ImportMatchKey{Column: "member_phone", Value: "08031234567"}, keys[0])
		assert.Equal(t, ImportMatchKey{Column: "member_email", Value: "ade@example.com"}, keys[1])
	})

	t.Run("phone only", func(t *testing.T) {
		keys := MatchKeys("08031234567", "")
		require.Len(t, keys, 1)
		assert.Equal(t, "member_phone", keys[0].Column)
	})

	t.Run("email only", func(t *testing.T) {
		keys := MatchKeys("", "ade@example.com")
		require.Len(t, keys, 1)
		assert.Equal(t, "member_email", keys[0].Column)
	})

	t.Run("no contact data means no match, always created", func(t *testing.T) {
		assert.Empty(t, MatchKeys("", ""))
		assert.Empty(t, MatchKeys("   ", " "))
	})
}

// A re-imported row keeps the stored identity, so Save updates the matched
// member instead of inserting a second one.
func TestMergeForUpdate(t *testing.T) {
	existing := &model.MemberModel{
		MemberFirstName: "Ade",
		MemberLastName:  "Ojo",
		MemberPhone:     "08031234567",
		MemberAddress:   "Old Address",
		MemberCreatedAt: time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	existing.MemberID = uuid.New()

	incoming := &model.MemberModel{
		MemberFirstName: "Ade",
		MemberLastName:  "Ojo",
		MemberPhone:     "08031234567",
		MemberAddress:   "New Address",
	}

	MergeForUpdate(existing, incoming)

	assert.Equal(t, existing.MemberID, incoming.MemberID)
	assert.Equal(t, existing.MemberCreatedAt, incoming.MemberCreatedAt)
	// new field values win
	assert.Equal(t, "New Address", incoming.MemberAddress)
}
