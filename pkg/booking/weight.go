package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// WeightKind tells the machine how a weight reply was understood.
type WeightKind int

const (
	WeightNumeric WeightKind = iota // plain kilogram figure
	WeightPieces                    // garment counts, estimated
	WeightDescriptive               // free text, default weight applied
	WeightInvalid                   // numeric but out of the accepted range
)

var (
	numericWeightRe = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s*(?:kg|kgs|kilo|kilos|kilogram|kilograms)?\s*$`)
	pieceRe         = regexp.MustCompile(`(\d+)\s*(shirts?|t-?shirts?|pants?|trousers?|jeans|pieces?|pcs|clothes|items?)`)
)

// Per-garment weight estimates in kilograms.
const (
	shirtWeightKg   = 0.2
	pantsWeightKg   = 0.25
	genericWeightKg = 0.2
)

// ParseWeight interprets a weight reply. Numeric replies are taken as
// kilograms and checked against [minKg, maxKg]. Garment counts are converted
// to an estimate. Anything else is treated as a description: the default
// weight applies and the text is kept as a note for the outlet.
func ParseWeight(raw string, minKg, maxKg, defaultKg float64) (kg float64, note string, kind WeightKind) {
	text := strings.TrimSpace(strings.ToLower(raw))

	if m := numericWeightRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err == nil {
			if v < minKg || v > maxKg {
				return 0, "", WeightInvalid
			}
			return v, "", WeightNumeric
		}
	}

	if matches := pieceRe.FindAllStringSubmatch(text, -1); len(matches) > 0 {
		var total float64
		var parts []string
		for _, m := range matches {
			count, err := strconv.Atoi(m[1])
			if err != nil || count <= 0 {
				continue
			}
			per := genericWeightKg
			switch {
			case strings.HasPrefix(m[2], "shirt"), strings.HasPrefix(m[2], "t-shirt"), strings.HasPrefix(m[2], "tshirt"):
				per = shirtWeightKg
			case strings.HasPrefix(m[2], "pant"), strings.HasPrefix(m[2], "trouser"), m[2] == "jeans":
				per = pantsWeightKg
			}
			total += float64(count) * per
			parts = append(parts, fmt.Sprintf("%d %s", count, m[2]))
		}
		if total >= minKg {
			if total > maxKg {
				total = maxKg
			}
			return Round2(total), "estimated from: " + strings.Join(parts, ", "), WeightPieces
		}
	}

	if text == "" {
		return 0, "", WeightInvalid
	}
	return defaultKg, strings.TrimSpace(raw), WeightDescriptive
}
