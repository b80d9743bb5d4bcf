package extract

// Objects scans text left to right and returns every top-level balanced
// brace block, in order of appearance. Nested braces are included verbatim.
// A block that never closes is dropped at end of scan.
func Objects(text string) []string {
	var objs []string
	depth := 0
	start := -1

	for i, ch := range text {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start >= 0 {
				objs = append(objs, text[start:i+1])
				start = -1
			}
		}
	}
	return objs
}
