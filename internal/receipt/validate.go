package receipt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	retailerPattern = regexp.MustCompile(`^[\w\s\-&]+$`)
	itemDescPattern = regexp.MustCompile(`^[\w\s\-]+$`)
	pricePattern    = regexp.MustCompile(`^\d+\.\d{2}$`)
)

var requiredFields = []string{"retailer", "purchaseDate", "purchaseTime", "items", "total"}

// Validate checks a raw receipt document and returns all format violations
// in check order. An empty result means the document is ready to score.
// If any required field is missing, only the missing-field errors are
// returned and the format checks are skipped.
func Validate(doc map[string]any) []string {
	errors := []string{}

	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			errors = append(errors, fmt.Sprintf("Missing field: %s", field))
		}
	}
	if len(errors) > 0 {
		return errors
	}

	retailer, ok := doc["retailer"].(string)
	if !ok || !retailerPattern.MatchString(retailer) {
		errors = append(errors, "Retailer contains invalid characters. Only alphanumerics, spaces, hyphens, and & are allowed.")
	}

	if !isString(doc["purchaseDate"], func(s string) bool {
		_, err := time.Parse(dateLayout, s)
		return err == nil
	}) {
		errors = append(errors, "Invalid purchaseDate. Expected format: YYYY-MM-DD.")
	}

	if !isString(doc["purchaseTime"], func(s string) bool {
		_, err := time.Parse(timeLayout, s)
		return err == nil
	}) {
		errors = append(errors, "Invalid purchaseTime. Expected format: HH:MM.")
	}

	items, ok := doc["items"].([]any)
	if !ok || len(items) < 1 {
		errors = append(errors, "Receipt must contain at least one item.")
	} else {
		for idx, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				errors = append(errors, fmt.Sprintf("Item %d is not an object.", idx))
				continue
			}
			desc, hasDesc := item["shortDescription"]
			price, hasPrice := item["price"]
			if !hasDesc || !hasPrice {
				errors = append(errors, fmt.Sprintf("Item %d is missing required fields.", idx))
				continue
			}
			if !isString(desc, func(s string) bool {
				return itemDescPattern.MatchString(strings.TrimSpace(s))
			}) {
				errors = append(errors, fmt.Sprintf("Item %d description contains invalid characters.", idx))
			}
			switch checkAmount(price) {
			case amountBadFormat:
				errors = append(errors, fmt.Sprintf("Item %d price must be a string with exactly two decimal places (e.g., 12.00).", idx))
			case amountNotANumber:
				errors = append(errors, fmt.Sprintf("Item %d price is not a valid number.", idx))
			}
		}
	}

	switch checkAmount(doc["total"]) {
	case amountBadFormat:
		errors = append(errors, "Total must be a string with exactly two decimal places (e.g., 35.35).")
	case amountNotANumber:
		errors = append(errors, "Total is not a valid number.")
	}

	return errors
}

type amountCheck int

const (
	amountOK amountCheck = iota
	amountBadFormat
	amountNotANumber
)

// checkAmount validates a monetary amount: a string of digits, a dot, and
// exactly two decimal places, that also parses as a finite number. The
// parse check is defensive; a string matching the pattern always parses.
func checkAmount(v any) amountCheck {
	s, ok := v.(string)
	if !ok || !pricePattern.MatchString(s) {
		return amountBadFormat
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return amountNotANumber
	}
	return amountOK
}

func isString(v any, valid func(string) bool) bool {
	s, ok := v.(string)
	return ok && valid(s)
}
