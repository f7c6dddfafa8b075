package attrcombo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name          string
		selections    []Selection
		expected      string
		expectedError error
	}{
		{
			name:          "empty selection",
			selections:    nil,
			expectedError: ErrEmptySelection,
		},
		{
			name: "single pair",
			selections: []Selection{
				{AssignmentID: 1, ValueID: 7},
			},
			expected: `<Attributes><ProductVariantAttribute ID="1">` +
				`<ProductVariantAttributeValue><Value>7</Value></ProductVariantAttributeValue>` +
				`</ProductVariantAttribute></Attributes>`,
		},
		{
			name: "two pairs keep input order",
			selections: []Selection{
				{AssignmentID: 2, ValueID: 5},
				{AssignmentID: 1, ValueID: 9},
			},
			expected: `<Attributes><ProductVariantAttribute ID="2">` +
				`<ProductVariantAttributeValue><Value>5</Value></ProductVariantAttributeValue>` +
				`</ProductVariantAttribute><ProductVariantAttribute ID="1">` +
				`<ProductVariantAttributeValue><Value>9</Value></ProductVariantAttributeValue>` +
				`</ProductVariantAttribute></Attributes>`,
		},
		{
			name: "duplicate assignment",
			selections: []Selection{
				{AssignmentID: 1, ValueID: 7},
				{AssignmentID: 1, ValueID: 8},
			},
			expectedError: ErrDuplicateAssignment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Encode(tc.selections)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, out)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedError error
	}{
		{
			name:          "not xml",
			input:         "not xml at all",
			expectedError: nil, // any parse error
		},
		{
			name:          "empty document",
			input:         `<Attributes></Attributes>`,
			expectedError: ErrEmptySelection,
		},
		{
			name: "assignment without value",
			input: `<Attributes><ProductVariantAttribute ID="1">` +
				`</ProductVariantAttribute></Attributes>`,
			expectedError: ErrMissingValue,
		},
		{
			name: "multi select",
			input: `<Attributes><ProductVariantAttribute ID="1">` +
				`<ProductVariantAttributeValue><Value>1</Value></ProductVariantAttributeValue>` +
				`<ProductVariantAttributeValue><Value>2</Value></ProductVariantAttributeValue>` +
				`</ProductVariantAttribute></Attributes>`,
			expectedError: ErrMultiSelect,
		},
		{
			name: "duplicate assignment",
			input: `<Attributes><ProductVariantAttribute ID="1">` +
				`<ProductVariantAttributeValue><Value>1</Value></ProductVariantAttributeValue>` +
				`</ProductVariantAttribute><ProductVariantAttribute ID="1">` +
				`<ProductVariantAttributeValue><Value>2</Value></ProductVariantAttributeValue>` +
				`</ProductVariantAttribute></Attributes>`,
			expectedError: ErrDuplicateAssignment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			require.Error(t, err)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// decode(encode(P)) == set(P) for non-empty, per-assignment-unique P
	testCases := []struct {
		name       string
		selections []Selection
	}{
		{
			name:       "one pair",
			selections: []Selection{{AssignmentID: 1, ValueID: 1}},
		},
		{
			name: "several pairs",
			selections: []Selection{
				{AssignmentID: 3, ValueID: 14},
				{AssignmentID: 1, ValueID: 2},
				{AssignmentID: 8, ValueID: 8},
			},
		},
		{
			name: "large ids",
			selections: []Selection{
				{AssignmentID: 18446744073709551615, ValueID: 42},
				{AssignmentID: 7, ValueID: 18446744073709551615},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.selections)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)

			assert.ElementsMatch(t, tc.selections, decoded)
		})
	}
}
