package meme

import "strings"

// RegroupRestText merges fragments which touch each other, i.e. where one
// fragment ends in the column the next one starts. Applying it to an already
// merged sequence returns an equal sequence.
func RegroupRestText(rest []Fragment) []Fragment {
	if len(rest) == 0 {
		return nil
	}
	merged := make([]Fragment, 0, len(rest))
	cur := rest[0]
	for _, f := range rest[1:] {
		if cur.End() == f.Column {
			cur.Text += f.Text
			continue
		}
		merged = append(merged, cur)
		cur = f
	}
	return append(merged, cur)
}

// UnifyRestText reassembles the residual text of a line. Every fragment is
// placed at its column by padding with spaces, and the result is padded to
// the width of the original line, so columns of the residual text line up
// with the source.
func UnifyRestText(b Body) string {
	var sb strings.Builder
	col := 0
	for _, f := range b.Rest {
		if f.Column > col {
			sb.WriteString(strings.Repeat(" ", f.Column-col))
			col = f.Column
		}
		sb.WriteString(f.Text)
		col += Width(f.Text)
	}
	if b.Width > col {
		sb.WriteString(strings.Repeat(" ", b.Width-col))
	}
	return sb.String()
}
