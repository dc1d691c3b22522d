package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylersemel/CoffeeMaker/internal/models"
)

func recipeBody(name string, price int, ingredients map[string]int) map[string]interface{} {
	list := make([]map[string]interface{}, 0, len(ingredients))
	for n, a := range ingredients {
		list = append(list, map[string]interface{}{"name": n, "amount": a})
	}
	return map[string]interface{}{"name": name, "price": price, "ingredients": list}
}

func TestCreateRecipe(t *testing.T) {
	app, db := setupTest(t)
	_, staffToken := createUser(t, db, "barista1", "coffee1!", models.RoleStaff)

	code, body := doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("mocha", 5, map[string]int{"Coffee": 3, "Chocolate": 2}), staffToken)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "mocha", body["name"])

	// Duplicate name.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("mocha", 7, map[string]int{"Coffee": 1}), staffToken)
	assert.Equal(t, http.StatusConflict, code)

	// No ingredients.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("empty1", 5, nil), staffToken)
	assert.Equal(t, http.StatusNotAcceptable, code)

	// Negative price.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("cheap1", -1, map[string]int{"Coffee": 1}), staffToken)
	assert.Equal(t, http.StatusNotAcceptable, code)

	// Non-positive ingredient amount.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("weak1", 2, map[string]int{"Coffee": 0}), staffToken)
	assert.Equal(t, http.StatusNotAcceptable, code)
}

func TestRecipeCatalogCapacity(t *testing.T) {
	app, db := setupTest(t)
	_, staffToken := createUser(t, db, "barista1", "coffee1!", models.RoleStaff)

	for i := 1; i <= models.MaxRecipes; i++ {
		code, _ := doJSON(t, app, http.MethodPost, "/api/v1/recipes",
			recipeBody(fmt.Sprintf("recipe%d", i), i, map[string]int{"Coffee": 1}), staffToken)
		require.Equal(t, http.StatusCreated, code)
	}

	code, _ := doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("onetoomany", 4, map[string]int{"Coffee": 1}), staffToken)
	assert.Equal(t, http.StatusInsufficientStorage, code)

	var count int64
	db.Model(&models.Recipe{}).Count(&count)
	assert.EqualValues(t, models.MaxRecipes, count)
}

func TestUpdateRecipeMergesIngredients(t *testing.T) {
	app, db := setupTest(t)
	_, staffToken := createUser(t, db, "barista1", "coffee1!", models.RoleStaff)

	code, _ := doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("mocha", 5, map[string]int{"Coffee": 3, "Milk": 2}), staffToken)
	require.Equal(t, http.StatusCreated, code)

	var coffeeRow models.RecipeIngredient
	require.NoError(t, db.Where("name = ?", "Coffee").First(&coffeeRow).Error)

	code, _ = doJSON(t, app, http.MethodPut, "/api/v1/recipes/mocha",
		recipeBody("mocha", 6, map[string]int{"Coffee": 5, "Sugar": 1}), staffToken)
	require.Equal(t, http.StatusOK, code)

	var recipe models.Recipe
	require.NoError(t, db.Preload("Ingredients").Where("name = ?", "mocha").First(&recipe).Error)
	assert.Equal(t, 6, recipe.Price)
	require.Len(t, recipe.Ingredients, 2)

	byName := map[string]models.RecipeIngredient{}
	for _, i := range recipe.Ingredients {
		byName[i.Name] = i
	}
	// Coffee kept its row and took the new amount.
	assert.Equal(t, coffeeRow.ID, byName["Coffee"].ID)
	assert.Equal(t, 5, byName["Coffee"].Amount)
	assert.Equal(t, 1, byName["Sugar"].Amount)

	// Milk's row is gone from the pool entirely.
	var milkCount int64
	db.Model(&models.RecipeIngredient{}).Where("name = ?", "Milk").Count(&milkCount)
	assert.Zero(t, milkCount)
}

func TestUpdateRecipeErrors(t *testing.T) {
	app, db := setupTest(t)
	_, staffToken := createUser(t, db, "barista1", "coffee1!", models.RoleStaff)

	code, _ := doJSON(t, app, http.MethodPut, "/api/v1/recipes/nothing",
		recipeBody("nothing", 5, map[string]int{"Coffee": 1}), staffToken)
	assert.Equal(t, http.StatusNotFound, code)

	doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("mocha", 5, map[string]int{"Coffee": 1}), staffToken)
	doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("latte", 5, map[string]int{"Coffee": 1}), staffToken)

	// Updating cannot drop all ingredients.
	code, _ = doJSON(t, app, http.MethodPut, "/api/v1/recipes/mocha",
		recipeBody("mocha", 5, nil), staffToken)
	assert.Equal(t, http.StatusNotAcceptable, code)

	// Renaming onto another recipe is a conflict.
	code, _ = doJSON(t, app, http.MethodPut, "/api/v1/recipes/mocha",
		recipeBody("latte", 5, map[string]int{"Coffee": 1}), staffToken)
	assert.Equal(t, http.StatusConflict, code)
}

func TestDeleteRecipe(t *testing.T) {
	app, db := setupTest(t)
	_, staffToken := createUser(t, db, "barista1", "coffee1!", models.RoleStaff)

	code, _ := doJSON(t, app, http.MethodPost, "/api/v1/recipes",
		recipeBody("mocha", 5, map[string]int{"Coffee": 3}), staffToken)
	require.Equal(t, http.StatusCreated, code)

	code, _ = doJSON(t, app, http.MethodDelete, "/api/v1/recipes/mocha", nil, staffToken)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, app, http.MethodGet, "/api/v1/recipes/mocha", nil, staffToken)
	assert.Equal(t, http.StatusNotFound, code)

	// Requirement rows are cleaned up with the recipe.
	var count int64
	db.Model(&models.RecipeIngredient{}).Count(&count)
	assert.Zero(t, count)

	code, _ = doJSON(t, app, http.MethodDelete, "/api/v1/recipes/mocha", nil, staffToken)
	assert.Equal(t, http.StatusNotFound, code)
}
