// Package report turns raw multi-line chat messages into validated training
// records. Parsing is positional: the message must contain exactly 7 or 8
// non-empty lines in a fixed order (date, trainer, chain, zone, address,
// quantity, sellers, optional comments). Failures carry an enumerated Kind so
// callers can pick a user-facing message without string matching.
package report

import (
	"regexp"
	"strings"
	"time"
)

// Kind identifies one validation failure category.
type Kind string

const (
	KindFormat         Kind = "FORMAT"
	KindDateFormat     Kind = "DATE_FORMAT"
	KindDateInvalid    Kind = "DATE_INVALID"
	KindQuantityFormat Kind = "QUANTITY_FORMAT"
	KindEmptyTrainer   Kind = "EMPTY_TRAINER"
	KindEmptyChain     Kind = "EMPTY_CHAIN"
	KindEmptyZone      Kind = "EMPTY_ZONE"
	KindEmptyAddress   Kind = "EMPTY_ADDRESS"
	KindEmptyQuantity  Kind = "EMPTY_QUANTITY"
	KindEmptySellers   Kind = "EMPTY_SELLERS"
)

// ValidationError reports why a message failed validation. Callers branch on
// Kind via errors.As.
type ValidationError struct {
	Kind Kind
}

func (e *ValidationError) Error() string {
	return "validation failed: " + string(e.Kind)
}

func fail(kind Kind) *ValidationError {
	return &ValidationError{Kind: kind}
}

// Record is one validated training-event submission. All text fields are
// trimmed, Date is in canonical DD-MM-YY form and Sellers is the normalized
// ", "-joined list. A Record is only ever constructed by Parser.Parse; once
// returned it is not mutated.
type Record struct {
	Date     string
	Trainer  string
	Chain    string
	Zone     string
	Address  string
	Quantity string
	Sellers  string
	Comments string
}

// dateLayout is the canonical DD-MM-YY rendering.
const dateLayout = "02-01-06"

var (
	dateShape     = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`)
	allDigits     = regexp.MustCompile(`^\d+$`)
	sellerSplitRE = regexp.MustCompile(`[;,]`)
)

// Parser validates raw messages into Records.
//
// StrictQuantity requires the quantity line to be all digits. It defaults to
// on; turning it off restores the lenient behavior where any non-empty
// quantity text is accepted.
type Parser struct {
	StrictQuantity bool
}

// NewParser returns a Parser with strict quantity validation enabled.
func NewParser() *Parser {
	return &Parser{StrictQuantity: true}
}

// Parse splits raw into non-empty trimmed lines and validates them in order.
// It returns either a fully valid Record or a *ValidationError; no partially
// valid record is ever produced. Validation short-circuits on the first
// failing check.
func (p *Parser) Parse(raw string) (*Record, error) {
	lines := splitLines(raw)

	// la octava línea (comentarios) es opcional
	if len(lines) != 7 && len(lines) != 8 {
		return nil, fail(KindFormat)
	}

	date := lines[0]
	trainer := lines[1]
	chain := lines[2]
	zone := lines[3]
	address := lines[4]
	quantity := lines[5]
	sellersRaw := lines[6]
	comments := ""
	if len(lines) == 8 {
		comments = lines[7]
	}

	if !dateShape.MatchString(date) {
		return nil, fail(KindDateFormat)
	}
	parsedDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fail(KindDateInvalid)
	}

	if p.StrictQuantity && !allDigits.MatchString(quantity) {
		return nil, fail(KindQuantityFormat)
	}

	for _, f := range []struct {
		value string
		kind  Kind
	}{
		{trainer, KindEmptyTrainer},
		{chain, KindEmptyChain},
		{zone, KindEmptyZone},
		{address, KindEmptyAddress},
		{quantity, KindEmptyQuantity},
		{sellersRaw, KindEmptySellers},
	} {
		if f.value == "" {
			return nil, fail(f.kind)
		}
	}

	// Re-checked after the emptiness pass so a later relaxation of the checks
	// above cannot let a malformed quantity through.
	if p.StrictQuantity && !allDigits.MatchString(quantity) {
		return nil, fail(KindQuantityFormat)
	}

	sellers := normalizeSellers(sellersRaw)
	if sellers == "" {
		return nil, fail(KindEmptySellers)
	}

	return &Record{
		Date:     parsedDate.Format(dateLayout),
		Trainer:  trainer,
		Chain:    chain,
		Zone:     zone,
		Address:  address,
		Quantity: quantity,
		Sellers:  sellers,
		Comments: comments,
	}, nil
}

// splitLines returns the non-empty trimmed lines of raw, in order.
func splitLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// normalizeSellers splits the raw sellers line on ',' or ';', trims every
// token, drops empties and rejoins with ", ". Returns "" when no token
// survives.
func normalizeSellers(raw string) string {
	var sellers []string
	for _, s := range sellerSplitRE.Split(raw, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			sellers = append(sellers, s)
		}
	}
	return strings.Join(sellers, ", ")
}
