package types

import (
	"fmt"
	"strings"
)

// Fixed directory-name conventions shared by both supported games.
// These are literal tokens, not configurable per call.
const (
	MapsDirName   = "maps"
	MapFileSuffix = ".bsp"
)

// GameType identifies which supported game an install targets. Its value
// doubles as the literal subdirectory name under the game installation root.
type GameType string

const (
	GameCZero   GameType = "czero"
	GameCStrike GameType = "cstrike"
)

// KnownGameTypes lists every supported game, in detection order.
func KnownGameTypes() []GameType {
	return []GameType{GameCZero, GameCStrike}
}

func (g GameType) String() string {
	return string(g)
}

// Dir returns the subdirectory name the game uses under its install root.
func (g GameType) Dir() string {
	return string(g)
}

// ParseGameType converts a user-supplied game name into a GameType.
func ParseGameType(s string) (GameType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "czero", "cz":
		return GameCZero, nil
	case "cstrike", "cs":
		return GameCStrike, nil
	}
	return "", fmt.Errorf("unknown game type %q (expected czero or cstrike)", s)
}
