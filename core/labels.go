package core

// Label renders a node ID as a spreadsheet-style column name:
// 0→"A", 25→"Z", 26→"AA", 27→"AB", ...
// Negative IDs render as "?".
func Label(id NodeID) string {
	if id < 0 {
		return "?"
	}
	n := int(id) + 1
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
