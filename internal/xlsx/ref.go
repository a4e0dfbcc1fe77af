package xlsx

import "strconv"

// ColumnLetters converts a zero-based column index to its spreadsheet
// letters using bijective base-26: 0 is "A", 25 is "Z", 26 is "AA",
// 701 is "ZZ". Unlike ordinary base-26 there is no digit for zero.
func ColumnLetters(index int) string {
	n := index + 1
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// cellRef builds the A1-style reference for a zero-based column index and
// a one-based row number.
func cellRef(col, row int) string {
	return ColumnLetters(col) + strconv.Itoa(row)
}
