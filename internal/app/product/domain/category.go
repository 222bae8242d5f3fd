package domain

// Category is a category label with the number of products assigned to it.
type Category struct {
	Name  string
	Count int
}

// GroupByCategory counts products per category.
// Categories appear in the order they are first seen. Nil entries are skipped.
func GroupByCategory(products []*Product) []Category {
	index := make(map[string]int)
	out := make([]Category, 0)
	for _, p := range products {
		if p == nil {
			continue
		}
		if i, ok := index[p.Category]; ok {
			out[i].Count++
			continue
		}
		index[p.Category] = len(out)
		out = append(out, Category{Name: p.Category, Count: 1})
	}
	return out
}
