package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogRequestAccepted(t *testing.T) {
	valid := []CalcRequest{
		{ActivityType: "electricity", Subtype: "ac", Quantity: 2, Unit: "hours"},
		{ActivityType: "electricity", Subtype: "geyser", Quantity: 0.5, Unit: "hours"},
		{ActivityType: "water", Subtype: "shower", Quantity: 6, Unit: "minutes"},
		{ActivityType: "water", Subtype: "bucket", Quantity: 2, Unit: "count"},
		{ActivityType: "waste", Subtype: "plastic_bag", Quantity: 3, Unit: "count"},
		{ActivityType: "materials", Subtype: "used_reusable_item", Quantity: 1, Unit: "count"},
		{ActivityType: "flights", Subtype: "long_haul_first", Quantity: 8000, Unit: "km"},
		{ActivityType: "flights", Subtype: "domestic_economy", Quantity: 0, Unit: "km"},
	}
	for _, req := range valid {
		assert.NoError(t, ValidateLogRequest(req), "%s/%s", req.ActivityType, req.Subtype)
	}
}

func TestValidateLogRequestRejected(t *testing.T) {
	cases := []struct {
		name string
		req  CalcRequest
	}{
		{"unknown activity type", CalcRequest{ActivityType: "teleportation", Subtype: "beam", Quantity: 1, Unit: "count"}},
		{"extended type is preview-only", CalcRequest{ActivityType: "transport", Subtype: "cycle", Quantity: 5, Unit: "km"}},
		{"unknown subtype", CalcRequest{ActivityType: "electricity", Subtype: "toaster", Quantity: 1, Unit: "hours"}},
		{"subtype from wrong type", CalcRequest{ActivityType: "water", Subtype: "ac", Quantity: 1, Unit: "minutes"}},
		{"wrong unit", CalcRequest{ActivityType: "electricity", Subtype: "ac", Quantity: 1, Unit: "minutes"}},
		{"missing unit", CalcRequest{ActivityType: "flights", Subtype: "domestic_economy", Quantity: 500}},
		{"negative quantity", CalcRequest{ActivityType: "waste", Subtype: "plastic_bottle", Quantity: -1, Unit: "count"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateLogRequest(tc.req))
		})
	}
}

func TestIsPreviewableActivityType(t *testing.T) {
	for _, activityType := range []string{"electricity", "water", "waste", "materials", "flights"} {
		assert.True(t, IsPreviewableActivityType(activityType), activityType)
	}
	for _, activityType := range ExtendedActivityTypes {
		assert.True(t, IsPreviewableActivityType(activityType), activityType)
	}
	assert.False(t, IsPreviewableActivityType("teleportation"))
	assert.False(t, IsPreviewableActivityType(""))
}
