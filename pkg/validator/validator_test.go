package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Name   string   `validate:"required"`
	Status string   `validate:"oneof=IN_STOCK LOW_STOCK"`
	Rating float64  `validate:"gte=3.6,lte=4.9"`
	Tags   []string `validate:"min=2,max=4"`
}

func validRow() testRow {
	return testRow{
		Name:   "Aurora Dashboard Kit",
		Status: "IN_STOCK",
		Rating: 4.2,
		Tags:   []string{"UI", "Docs"},
	}
}

func TestValidate_ValidStruct(t *testing.T) {
	row := validRow()
	assert.NoError(t, Validate(&row))
}

func TestValidate_MissingRequired(t *testing.T) {
	row := validRow()
	row.Name = ""

	err := Validate(&row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Name' is required")
}

func TestValidate_OutOfRange(t *testing.T) {
	row := validRow()
	row.Rating = 5.0

	err := Validate(&row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Rating' must be less than or equal to 4.9")
}

func TestValidate_OneOf(t *testing.T) {
	row := validRow()
	row.Status = "SOLD_OUT"

	err := Validate(&row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: IN_STOCK LOW_STOCK")
}

func TestValidate_FieldsMap(t *testing.T) {
	row := validRow()
	row.Name = ""
	row.Tags = []string{"UI"}

	err := Validate(&row)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := vErr.Fields()
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "must have at least 2 entries", fields["Tags"])
}
