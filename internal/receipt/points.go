package receipt

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Points applies the seven scoring rules to a receipt and returns the sum
// of their contributions. The receipt must already have passed Validate;
// fields that fail to parse anyway contribute nothing rather than failing.
func Points(r Receipt) int {
	points := 0

	// One point per alphanumeric character in the retailer name.
	for _, c := range r.Retailer {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			points++
		}
	}

	if total, err := strconv.ParseFloat(r.Total, 64); err == nil {
		// 50 points if the total is a round dollar amount.
		if total == math.Trunc(total) {
			points += 50
		}
		// 25 points if the total is a multiple of 0.25. The comparison
		// happens in rounded cents to sidestep float representation error.
		if int(math.Round(total*100))%25 == 0 {
			points += 25
		}
	}

	// 5 points for every two items.
	points += len(r.Items) / 2 * 5

	// ceil(price * 0.2) for every item whose trimmed description length is
	// a multiple of 3.
	for _, item := range r.Items {
		desc := strings.TrimSpace(item.ShortDescription)
		if len(desc)%3 != 0 {
			continue
		}
		if price, err := strconv.ParseFloat(item.Price, 64); err == nil {
			points += int(math.Ceil(price * 0.2))
		}
	}

	// 6 points if the purchase day is odd.
	if date, err := time.Parse(dateLayout, r.PurchaseDate); err == nil && date.Day()%2 != 0 {
		points += 6
	}

	// 10 points if the purchase time falls between 14:00 and 16:00
	// inclusive, at minute precision.
	if t, err := time.Parse(timeLayout, r.PurchaseTime); err == nil {
		minutes := t.Hour()*60 + t.Minute()
		if minutes >= 14*60 && minutes <= 16*60 {
			points += 10
		}
	}

	return points
}
