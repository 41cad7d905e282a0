package cmd

import "testing"

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)
	env.write("data/salt.json", warnSalt)
	env.write("data/dairy/milk.json", `{
  "id": "whole_milk",
  "name": {"en": "Whole Milk"},
  "category": "dairy",
  "composition": {"water": 88.1},
  "physical": {},
  "sources": ["USDA"]
}
`)

	out := env.run("stats")
	env.contains(out, "Ingredients: 3")
	env.contains(out, "dairy")
	env.contains(out, "seasoning")
	env.contains(out, "Sourced: 2 of 3")
}

func TestStats_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)

	out := env.run("stats", "-o", "json")
	env.contains(out, `"total":1`)
	env.contains(out, `"sourced":1`)
}
