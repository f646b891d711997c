package hhts

// rawFrame builds an extract-shaped frame from sparse rows; cells a row
// does not name stay null, like a trimmed delimited extract.
func rawFrame(cols []string, rows ...map[string]string) *Frame {
	f := NewFrame(cols...)
	for _, r := range rows {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = r[c]
		}
		f.AppendRow(row...)
	}
	return f
}
