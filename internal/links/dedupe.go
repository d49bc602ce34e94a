package links

// Dedupe returns each distinct value of items exactly once, keeping the
// position of its first occurrence. Download order therefore follows the
// order in which links appear on the page.
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
