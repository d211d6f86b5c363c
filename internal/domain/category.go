package domain

// Category is a labelled grouping of questions, e.g. "Science".
// Categories are static reference data.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryNames indexes category display names by ID, the shape the API
// returns for category listings.
func CategoryNames(categories []*Category) map[int64]string {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		names[c.ID] = c.Type
	}
	return names
}
