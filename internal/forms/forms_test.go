package forms_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/forms"
)

func TestParseTransaction(t *testing.T) {
	type testCase struct {
		name       string
		values     url.Values
		wantFields []string
	}

	tests := []testCase{
		{
			name: "Valid",
			values: url.Values{
				"title":    {"Rent"},
				"amount":   {"1000.50"},
				"type":     {"expense"},
				"category": {"rent"},
			},
		},
		{
			name: "MissingTitle",
			values: url.Values{
				"amount":   {"10"},
				"type":     {"expense"},
				"category": {"food"},
			},
			wantFields: []string{"title"},
		},
		{
			name: "BadType",
			values: url.Values{
				"title":    {"Rent"},
				"amount":   {"10"},
				"type":     {"transfer"},
				"category": {"rent"},
			},
			wantFields: []string{"type"},
		},
		{
			name: "BadCategory",
			values: url.Values{
				"title":    {"Rent"},
				"amount":   {"10"},
				"type":     {"expense"},
				"category": {"utilities"},
			},
			wantFields: []string{"category"},
		},
		{
			name: "MalformedAmount",
			values: url.Values{
				"title":    {"Rent"},
				"amount":   {"ten euros"},
				"type":     {"expense"},
				"category": {"rent"},
			},
			wantFields: []string{"amount"},
		},
		{
			name:       "Empty",
			values:     url.Values{},
			wantFields: []string{"title", "amount", "type", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, errs := forms.ParseTransaction(tt.values)

			if len(tt.wantFields) == 0 {
				require.Nil(t, errs)
				assert.Equal(t, tt.values.Get("title"), form.Title)
				assert.True(t, form.AmountValue().IsPositive())

				return
			}

			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestParseTransaction_PreservesInput(t *testing.T) {
	form, errs := forms.ParseTransaction(url.Values{
		"title":    {"Rent"},
		"amount":   {"not a number"},
		"type":     {"expense"},
		"category": {"rent"},
	})

	require.NotNil(t, errs)

	// Rejected input comes back verbatim for redisplay.
	assert.Equal(t, "not a number", form.Amount)
	assert.Equal(t, "Rent", form.Title)
}

func TestParseTransaction_NegativeAmountAllowed(t *testing.T) {
	_, errs := forms.ParseTransaction(url.Values{
		"title":    {"Refund"},
		"amount":   {"-25.00"},
		"type":     {"expense"},
		"category": {"shopping"},
	})

	assert.Nil(t, errs)
}

func TestParseRegistration(t *testing.T) {
	form, errs := forms.ParseRegistration(url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"correct horse"},
	})
	require.Nil(t, errs)
	assert.Equal(t, "alice", form.Username)

	_, errs = forms.ParseRegistration(url.Values{
		"username": {"alice"},
		"email":    {"not-an-email"},
		"password": {"short"},
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestParseLogin(t *testing.T) {
	_, errs := forms.ParseLogin(url.Values{
		"username": {"alice"},
		"password": {"pw"},
	})
	assert.Nil(t, errs)

	_, errs = forms.ParseLogin(url.Values{"username": {"alice"}})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "password")
}
