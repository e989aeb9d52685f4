package config

type LevelDef struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Subtitle string         `yaml:"subtitle"`
	Map      []string       `yaml:"map"`
	Enemies  []SpawnDef     `yaml:"enemies"`
	Pickups  []PlacementDef `yaml:"pickups"`
	Barrels  []PlacementDef `yaml:"barrels"`
	Props    []PlacementDef `yaml:"props"`
}

// SpawnDef places an archetype on the grid. Variant is cosmetic and picked at
// random when omitted.
type SpawnDef struct {
	Type    string `yaml:"type"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Variant *int   `yaml:"variant"`
}

type PlacementDef struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Grid tiles.
const (
	TileFloor   = '.'
	TileWall    = '#'
	TileDoor    = 'D'
	TileExit    = 'E'
	TilePlayer  = 'P'
	TileVending = 'V'
	TileBench   = 'B'
)

// HasPlayerStart reports whether the grid carries a player start marker.
func (l *LevelDef) HasPlayerStart() bool {
	for _, row := range l.Map {
		for _, c := range row {
			if c == TilePlayer {
				return true
			}
		}
	}
	return false
}
