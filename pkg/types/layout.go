package types

// MapSourceLayout classifies the shape of a map source directory relative to
// the canonical <gameType>/maps layout.
type MapSourceLayout int

const (
	// LayoutInvalid means the directory matches none of the recognized shapes.
	LayoutInvalid MapSourceLayout = iota
	// LayoutGameRooted means the directory already contains <gameType>/maps.
	LayoutGameRooted
	// LayoutMapsRooted means the directory contains a maps subdirectory but
	// no <gameType> wrapper.
	LayoutMapsRooted
	// LayoutBareMapFiles means the directory holds loose .bsp files with
	// neither wrapper.
	LayoutBareMapFiles
)

func (l MapSourceLayout) String() string {
	switch l {
	case LayoutGameRooted:
		return "game-rooted"
	case LayoutMapsRooted:
		return "maps-rooted"
	case LayoutBareMapFiles:
		return "bare-map-files"
	default:
		return "invalid"
	}
}
