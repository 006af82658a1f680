package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMessage = `01-03-24
Juan Perez
SuperMart
Norte
Calle 123
15
Ana, Luis; Pedro
Buen dia`

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind, verr.Kind)
}

func TestParse_ValidMessage(t *testing.T) {
	rec, err := NewParser().Parse(validMessage)
	require.NoError(t, err)

	want := &Record{
		Date:     "01-03-24",
		Trainer:  "Juan Perez",
		Chain:    "SuperMart",
		Zone:     "Norte",
		Address:  "Calle 123",
		Quantity: "15",
		Sellers:  "Ana, Luis, Pedro",
		Comments: "Buen dia",
	}
	assert.Equal(t, want, rec)
}

func TestParse_CommentsLineIsOptional(t *testing.T) {
	sevenLines := strings.Join(strings.Split(validMessage, "\n")[:7], "\n")

	rec, err := NewParser().Parse(sevenLines)
	require.NoError(t, err)
	assert.Equal(t, "", rec.Comments)
}

func TestParse_BlankLinesAreDiscarded(t *testing.T) {
	padded := "\n\n01-03-24\n\n  \nJuan Perez\nSuperMart\nNorte\nCalle 123\n15\nAna\n\n"

	rec, err := NewParser().Parse(padded)
	require.NoError(t, err)
	assert.Equal(t, "01-03-24", rec.Date)
	assert.Equal(t, "Ana", rec.Sellers)
}

func TestParse_LineCount(t *testing.T) {
	tests := []struct {
		name  string
		lines int
	}{
		{"empty", 0},
		{"one line", 1},
		{"five lines", 5},
		{"six lines", 6},
		{"nine lines", 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := strings.Repeat("x\n", tc.lines)
			_, err := NewParser().Parse(raw)
			requireKind(t, err, KindFormat)
		})
	}
}

func TestParse_DateValidation(t *testing.T) {
	tests := []struct {
		name string
		date string
		kind Kind
	}{
		{"wrong separator", "01/03/24", KindDateFormat},
		{"four digit year", "01-03-2024", KindDateFormat},
		{"free text", "ayer", KindDateFormat},
		{"shape ok but not a date", "99-99-99", KindDateInvalid},
		{"month out of range", "01-13-24", KindDateInvalid},
		{"day out of range", "32-01-24", KindDateInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.date + "\nJuan\nSuperMart\nNorte\nCalle 123\n15\nAna"
			_, err := NewParser().Parse(raw)
			requireKind(t, err, tc.kind)
		})
	}
}

func TestParse_StrictQuantity(t *testing.T) {
	raw := "01-03-24\nJuan\nSuperMart\nNorte\nCalle 123\nabc\nAna"

	_, err := NewParser().Parse(raw)
	requireKind(t, err, KindQuantityFormat)

	// lenient variant accepts any non-empty quantity text
	p := &Parser{StrictQuantity: false}
	rec, err := p.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.Quantity)
}

func TestParse_QuantityCheckedBeforeEmptyFields(t *testing.T) {
	// both the quantity and the sellers line are malformed; the quantity
	// check comes first in the validation order
	raw := "01-03-24\nJuan\nSuperMart\nNorte\nCalle 123\nquince\n;;;"
	_, err := NewParser().Parse(raw)
	requireKind(t, err, KindQuantityFormat)
}

func TestParse_SellersNormalization(t *testing.T) {
	tests := []struct {
		name    string
		sellers string
		want    string
	}{
		{"commas", "Ana,Luis,Pedro", "Ana, Luis, Pedro"},
		{"semicolons", "Ana;Luis;Pedro", "Ana, Luis, Pedro"},
		{"mixed separators", "a,b;c", "a, b, c"},
		{"spaced", "a, b , c", "a, b, c"},
		{"trailing separator", "Ana,", "Ana"},
		{"single", "Ana", "Ana"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := "01-03-24\nJuan\nSuperMart\nNorte\nCalle 123\n15\n" + tc.sellers
			rec, err := NewParser().Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rec.Sellers)
		})
	}
}

func TestParse_SellersWithOnlySeparators(t *testing.T) {
	raw := "01-03-24\nJuan\nSuperMart\nNorte\nCalle 123\n15\n;,;"
	_, err := NewParser().Parse(raw)
	requireKind(t, err, KindEmptySellers)
}

func TestParse_NormalizationIsIdempotent(t *testing.T) {
	rec, err := NewParser().Parse(validMessage)
	require.NoError(t, err)

	canonical := strings.Join([]string{
		rec.Date, rec.Trainer, rec.Chain, rec.Zone,
		rec.Address, rec.Quantity, rec.Sellers, rec.Comments,
	}, "\n")

	again, err := NewParser().Parse(canonical)
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestValidationError_ErrorString(t *testing.T) {
	err := error(&ValidationError{Kind: KindFormat})
	assert.Equal(t, "validation failed: FORMAT", err.Error())

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
