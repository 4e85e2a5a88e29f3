package multicheck

// NormalizeColumns maps any non-positive column count to 1.
func NormalizeColumns(columns int) int {
	if columns <= 0 {
		return 1
	}
	return columns
}

// SplitIntoColumns distributes options over columns by index: option i lands
// in column i mod columns. Every column is then padded with Placeholder
// entries up to the length of the longest one, so the result is rectangular.
//
// The column count is normalized first. A count larger than the number of
// options yields trailing columns made only of placeholders, and an empty
// option list yields empty columns. options is never modified.
func SplitIntoColumns(options []Option, columns int) [][]Option {
	columns = NormalizeColumns(columns)
	rows := RowCount(len(options), columns)

	result := make([][]Option, columns)
	for i := range result {
		result[i] = make([]Option, 0, rows)
	}
	for i, o := range options {
		col := i % columns
		result[col] = append(result[col], o)
	}
	for i := range result {
		for len(result[i]) < rows {
			result[i] = append(result[i], Placeholder)
		}
	}
	return result
}

// RowCount is the padded column length for n items over columns columns.
func RowCount(n, columns int) int {
	columns = NormalizeColumns(columns)
	if n <= 0 {
		return 0
	}
	return (n + columns - 1) / columns
}
