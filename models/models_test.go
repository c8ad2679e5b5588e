package models

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Day keys must round-trip through Postgres byte-identical. A SQL date column
// comes back from the pgx driver as time.Time and stringifies to RFC3339, not
// YYYY-MM-DD, which silently breaks the streak walk and trend dates. Pinning
// the column to a text type keeps the key exactly what was written.
func TestDayKeyColumnsAreText(t *testing.T) {
	cases := []struct {
		model interface{}
		field string
	}{
		{DaySession{}, "Date"},
		{ActivityLog{}, "Date"},
	}
	for _, tc := range cases {
		structField, ok := reflect.TypeOf(tc.model).FieldByName(tc.field)
		require.True(t, ok, "%T.%s missing", tc.model, tc.field)
		assert.Equal(t, reflect.String, structField.Type.Kind(), "%T.%s", tc.model, tc.field)

		tag := structField.Tag.Get("gorm")
		assert.Contains(t, tag, "type:varchar", "%T.%s must map to a text column", tc.model, tc.field)
		assert.NotContains(t, tag, "type:date", "%T.%s must not map to a SQL date column", tc.model, tc.field)
	}
}

// Goal's timestamps come from the embedded gorm.Model; a local re-declaration
// would shadow the promoted field and leave the column unmanaged.
func TestGoalTimestampsComeFromEmbeddedModel(t *testing.T) {
	goalType := reflect.TypeOf(Goal{})
	for i := 0; i < goalType.NumField(); i++ {
		field := goalType.Field(i)
		if field.Anonymous {
			continue
		}
		assert.NotEqual(t, "CreatedAt", field.Name, "CreatedAt must be promoted, not re-declared")
		assert.NotEqual(t, "UpdatedAt", field.Name, "UpdatedAt must be promoted, not re-declared")
	}

	structField, ok := goalType.FieldByName("CreatedAt")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, structField.Index, "CreatedAt should resolve through gorm.Model")
}

// The JSON column names the counters expose are the ones the atomic upsert
// assigns; a rename in one place without the other corrupts the counters.
func TestDaySessionCounterColumns(t *testing.T) {
	expected := []string{"co2eKg", "avoidedCo2eKg", "kwh", "waterLiters", "waterSavedLiters", "wasteKg", "wasteDiverted"}
	sessionType := reflect.TypeOf(DaySession{})

	var got []string
	for i := 0; i < sessionType.NumField(); i++ {
		field := sessionType.Field(i)
		if field.Type.Kind() == reflect.Float64 {
			got = append(got, strings.Split(field.Tag.Get("json"), ",")[0])
		}
	}
	assert.Equal(t, expected, got)
}
