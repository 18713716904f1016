package value

import "strconv"

// numberValue holds both the parsed float and the original source
// spelling of a JSON number, so unmutated numbers round-trip byte-for-byte
// (SPEC_FULL.md C1 supplement, grounded on original_source/jtc.cpp's
// passthrough number formatting).
type numberValue struct {
	text  string
	float float64
}

func parseNumberText(literal string) (numberValue, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return numberValue{}, err
	}
	return numberValue{text: literal, float: f}, nil
}

func numberFromFloat(f float64) numberValue {
	return numberValue{text: strconv.FormatFloat(f, 'g', -1, 64), float: f}
}
