package data

import "encoding/json"

// RawBoard is one hand-authored zone as stored in boards.json. Rows are
// strings of legend characters; the legend maps each character to a tile
// name understood by the board converter.
type RawBoard struct {
	X         int               `json:"x"`
	Y         int               `json:"y"`
	Dimension string            `json:"dimension"`
	Legend    map[string]string `json:"legend"`
	Rows      []string          `json:"rows"`

	// PlayerSpawn is optional and only used on first entry without a
	// transition of its own.
	PlayerSpawn *struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"playerSpawn,omitempty"`
}

// BoardsFile represents the structure of boards.json.
type BoardsFile struct {
	Boards []RawBoard `json:"boards"`
}

// LoadBoards loads all hand-authored boards from the embedded boards.json.
func LoadBoards() ([]RawBoard, error) {
	content, err := dataFS.ReadFile("boards.json")
	if err != nil {
		return nil, err
	}
	var file BoardsFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	return file.Boards, nil
}
