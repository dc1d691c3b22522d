package models

// ContainsIngredient reports whether the recipe requires an ingredient with
// the given name. Recipe ingredient names match case-sensitively.
func (r *Recipe) ContainsIngredient(name string) bool {
	for _, i := range r.Ingredients {
		if i.Name == name {
			return true
		}
	}
	return false
}

// MergeIngredients computes the ingredient list for a recipe update.
// Requirements present in both old and new keep their existing row and take
// the new amount, requirements only in the new list are added as fresh rows,
// and rows dropped from the new list are returned as removed so the caller
// can delete them.
func MergeIngredients(old, updated []RecipeIngredient) (merged, removed []RecipeIngredient) {
	byName := make(map[string]RecipeIngredient, len(old))
	for _, i := range old {
		byName[i.Name] = i
	}

	for _, in := range updated {
		if existing, ok := byName[in.Name]; ok {
			existing.Amount = in.Amount
			merged = append(merged, existing)
			delete(byName, in.Name)
			continue
		}
		merged = append(merged, RecipeIngredient{Name: in.Name, Amount: in.Amount})
	}

	for _, i := range old {
		if _, dropped := byName[i.Name]; dropped {
			removed = append(removed, i)
		}
	}
	return merged, removed
}

// TotalCost sums recipe price times quantity over the order's lines.
func TotalCost(items []OrderRecipe) int {
	total := 0
	for _, item := range items {
		total += item.Recipe.Price * item.Quantity
	}
	return total
}

// Requirements sums the ingredient amounts needed to prepare every line of
// the order, keyed by ingredient name. A line with quantity two needs twice
// its recipe's ingredients.
func Requirements(items []OrderRecipe) map[string]int {
	needed := make(map[string]int)
	for _, item := range items {
		for _, i := range item.Recipe.Ingredients {
			needed[i.Name] += i.Amount * item.Quantity
		}
	}
	return needed
}
