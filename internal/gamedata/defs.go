package gamedata

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "slime")
	Name        string `json:"name"`        // Display name (e.g., "Cave Slime")
	Glyph       string `json:"glyph"`       // Single character for map views (e.g., "s")
	HP          int    `json:"hp"`          // Base hit points
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
	Dimensions  []string `json:"dimensions"` // Dimension names this enemy may spawn in
}

// GlyphRune returns the glyph as a rune.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// SpawnsIn returns true if the enemy may appear in the named dimension.
// An empty list means it spawns anywhere.
func (e *EnemyDef) SpawnsIn(dimension string) bool {
	if len(e.Dimensions) == 0 {
		return true
	}
	for _, d := range e.Dimensions {
		if d == dimension {
			return true
		}
	}
	return false
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// FoodDef defines a consumable asset the generator may place on tiles.
type FoodDef struct {
	ID   string `json:"id"`   // Unique identifier (e.g., "berry")
	Name string `json:"name"` // Display name
	Kind int    `json:"kind"` // Numeric tile metadata value (world.FoodKind)
	Uses int    `json:"uses"` // Harvests before the tile is spent
}

// FoodsFile represents the structure of foods.json.
type FoodsFile struct {
	Foods []FoodDef `json:"foods"`
}

// LoadFoods loads food asset definitions from the embedded foods.json file.
func LoadFoods() ([]FoodDef, error) {
	file, err := Load[FoodsFile]("foods.json")
	if err != nil {
		return nil, err
	}
	return file.Foods, nil
}

// MustLoadFoods loads food definitions, panicking on error.
func MustLoadFoods() []FoodDef {
	foods, err := LoadFoods()
	if err != nil {
		panic(err)
	}
	return foods
}
