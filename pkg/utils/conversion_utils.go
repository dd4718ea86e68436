package utils

import "strconv"

// IntToStr converts an int to its string representation.
func IntToStr(num int) string {
	return strconv.Itoa(num)
}

// FloatToStr converts a float64 to its shortest exact string representation.
// Used when serializing numeric fields into spreadsheet cells.
func FloatToStr(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}

// StrToInt converts a string to an int, returning 0 for empty or malformed cells.
// Spreadsheet cells are free text, so a default of 0 matches the stored intent.
func StrToInt(s string) int {
	if s == "" {
		return 0
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return num
}

// StrToFloat converts a string to a float64, returning 0 for empty or malformed cells.
func StrToFloat(s string) float64 {
	if s == "" {
		return 0
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return num
}
