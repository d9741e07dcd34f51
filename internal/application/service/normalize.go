package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/enum"
)

// ClassifyChannel maps a row's free-text area and order-type labels onto
// the four canonical channels. It is total: anything unrecognized is
// dining. The area is checked first because it names the marketplace
// directly; a delivery order placed through Zomato must not degrade to
// generic parcel.
func ClassifyChannel(area, orderType string) enum.Channel {
	a := strings.ToLower(strings.TrimSpace(area))
	o := strings.ToLower(strings.TrimSpace(orderType))

	if strings.Contains(a, "zomato") {
		return enum.ChannelZomato
	}
	if strings.Contains(a, "swiggy") {
		return enum.ChannelSwiggy
	}

	if a == "parcel" || strings.Contains(a, "home delivery") || a == "pickup" || strings.Contains(a, "dine out") {
		return enum.ChannelParcel
	}

	// Order type only matters when the area matched nothing above
	if o == "pick up" || o == "pickup" || strings.Contains(o, "home delivery") {
		return enum.ChannelParcel
	}
	if strings.Contains(o, "delivery(parcel)") {
		return enum.ChannelParcel
	}

	return enum.ChannelDining
}

var (
	gramPattern = regexp.MustCompile(`(\d+\.?\d*)\s*(gm|gms|gram|grams)`)
	kiloPattern = regexp.MustCompile(`(\d+\.?\d*)\s*(kg|kgs|kilogram|kilograms)`)
)

// KgFactor extracts a kilogram multiplier from a weight-based
// variation's label, e.g. "250 Gms" -> 0.25. This is a best-effort
// heuristic over labels like "100 Gms", "250Gm[O]", "1 KG [P]";
// unmatched labels degrade to 1.0 rather than failing the row. The
// bare-number fallbacks mirror the labels seen in production and are
// intentionally loose.
func KgFactor(variationLabel string) float64 {
	if variationLabel == "" {
		return 1
	}

	lower := strings.ToLower(strings.TrimSpace(variationLabel))

	if m := gramPattern.FindStringSubmatch(lower); m != nil {
		grams, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return grams / 1000
		}
	}

	if m := kiloPattern.FindStringSubmatch(lower); m != nil {
		kg, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return kg
		}
	}

	if strings.Contains(lower, "100") {
		return 0.1
	}
	if strings.Contains(lower, "250") {
		return 0.25
	}
	if strings.Contains(lower, "500") {
		return 0.5
	}
	if strings.Contains(lower, "1 kg") || strings.Contains(lower, "1kg") {
		return 1.0
	}

	return 1
}
