// ingredient.go defines the typed ingredient schema.
//
// Separated from catalog.go to keep the data model apart from loading and
// query logic. These types mirror the on-disk JSON shape; the validator
// deliberately does not use them because it needs field-presence
// information that struct decoding discards.

package catalog

// Name holds the localised names of an ingredient. English is the only
// required locale and the one used for search and display.
type Name struct {
	En string `json:"en"`
	Es string `json:"es,omitempty"`
	Fr string `json:"fr,omitempty"`
	Zh string `json:"zh,omitempty"`
	Ja string `json:"ja,omitempty"`
}

// Composition holds chemical composition per 100g.
type Composition struct {
	Water         float64            `json:"water"`
	Protein       float64            `json:"protein"`
	TotalFat      float64            `json:"total_fat"`
	SaturatedFat  float64            `json:"saturated_fat,omitempty"`
	Carbohydrates float64            `json:"carbohydrates"`
	Fiber         float64            `json:"fiber,omitempty"`
	Sugar         float64            `json:"sugar,omitempty"`
	PH            *float64           `json:"ph,omitempty"`
	Minerals      map[string]float64 `json:"minerals,omitempty"`
	Vitamins      map[string]float64 `json:"vitamins,omitempty"`
}

// Physical holds physical properties. All fields are optional; nil means
// the property is unknown for this ingredient.
type Physical struct {
	DensityGPerML     *float64 `json:"density_g_per_ml,omitempty"`
	BoilingPointC     *float64 `json:"boiling_point_celsius,omitempty"`
	FreezingPointC    *float64 `json:"freezing_point_celsius,omitempty"`
	SmokePointC       *float64 `json:"smoke_point_celsius,omitempty"`
	SpecificHeatJPerG *float64 `json:"specific_heat_j_per_g_k,omitempty"`
	FlashPointC       *float64 `json:"flash_point_celsius,omitempty"`
}

// Ingredient is one complete database entry.
type Ingredient struct {
	ID          string      `json:"id"`
	Name        Name        `json:"name"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory,omitempty"`
	Composition Composition `json:"composition"`
	Physical    Physical    `json:"physical"`
	Allergens   []string    `json:"allergens,omitempty"`
	Substitutes []string    `json:"substitutes,omitempty"`
	Sources     []string    `json:"sources,omitempty"`

	// Path is the data file this entry was loaded from, relative to the
	// dataset root. Not part of the JSON schema.
	Path string `json:"-"`
}
