package maze

// OccupantKind tags the content of a tile.
type OccupantKind int

const (
	Empty OccupantKind = iota
	Dot
	PowerPellet
	Fruit
)

// FruitKind identifies a bonus fruit.
type FruitKind int

const (
	Cherry FruitKind = iota
	Strawberry
	Orange
	Apple
	Melon
	Galaxian
	Bell
	Key
)

// Score values for edibles.
const (
	DotScore         = 10
	PowerPelletScore = 50
)

var fruitScores = [...]int{
	Cherry:     100,
	Strawberry: 300,
	Orange:     500,
	Apple:      700,
	Melon:      1000,
	Galaxian:   2000,
	Bell:       3000,
	Key:        5000,
}

var fruitNames = [...]string{
	Cherry:     "Cherry",
	Strawberry: "Strawberry",
	Orange:     "Orange",
	Apple:      "Apple",
	Melon:      "Melon",
	Galaxian:   "Galaxian",
	Bell:       "Bell",
	Key:        "Key",
}

// FruitKinds lists every fruit from the most to the least valuable.
var FruitKinds = []FruitKind{Key, Bell, Galaxian, Melon, Apple, Orange, Strawberry, Cherry}

// Score returns the points awarded for eating the fruit.
func (f FruitKind) Score() int {
	if f < 0 || int(f) >= len(fruitScores) {
		return 0
	}
	return fruitScores[f]
}

// String returns the fruit name.
func (f FruitKind) String() string {
	if f < 0 || int(f) >= len(fruitNames) {
		return "Unknown"
	}
	return fruitNames[f]
}

// Occupant is the edible content of a tile.
// The zero value is an empty tile.
type Occupant struct {
	Kind  OccupantKind
	Fruit FruitKind // valid only when Kind == Fruit
}

// Convenience constructors.
var (
	EmptyTile       = Occupant{}
	DotTile         = Occupant{Kind: Dot}
	PowerPelletTile = Occupant{Kind: PowerPellet}
)

// FruitTile returns an occupant holding the given fruit.
func FruitTile(f FruitKind) Occupant {
	return Occupant{Kind: Fruit, Fruit: f}
}

// IsEmpty reports whether nothing is on the tile.
func (o Occupant) IsEmpty() bool {
	return o.Kind == Empty
}

// CountsForLevel reports whether eating this occupant progresses the level.
// Fruits are bonus items and do not count.
func (o Occupant) CountsForLevel() bool {
	return o.Kind == Dot || o.Kind == PowerPellet
}

// Score returns the points awarded for eating the occupant.
func (o Occupant) Score() int {
	switch o.Kind {
	case Dot:
		return DotScore
	case PowerPellet:
		return PowerPelletScore
	case Fruit:
		return o.Fruit.Score()
	default:
		return 0
	}
}

// String returns a short description of the occupant.
func (o Occupant) String() string {
	switch o.Kind {
	case Dot:
		return "Dot"
	case PowerPellet:
		return "PowerPellet"
	case Fruit:
		return "Fruit(" + o.Fruit.String() + ")"
	default:
		return "Empty"
	}
}
