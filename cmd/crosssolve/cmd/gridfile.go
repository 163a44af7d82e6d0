package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/crossplay/backend/pkg/board"
)

// gridFile is the on-disk JSON shape for a grid definition, shared by the
// solve and validate subcommands: {"width":5,"height":5,"black":[{"row":0,"col":0}],
// "fixed":[{"row":0,"col":1,"letter":"C"}]}.
type gridFile struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Black  []struct {
		Row int `json:"row"`
		Col int `json:"col"`
	} `json:"black"`
	Fixed []struct {
		Row    int    `json:"row"`
		Col    int    `json:"col"`
		Letter string `json:"letter"`
	} `json:"fixed"`
}

// loadGridConfig reads and parses a gridFile from path into a board.Config.
func loadGridConfig(path string) (board.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return board.Config{}, fmt.Errorf("failed to read grid file: %w", err)
	}

	var gf gridFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return board.Config{}, fmt.Errorf("invalid grid file JSON: %w", err)
	}

	config := board.Config{Width: gf.Width, Height: gf.Height}
	for _, b := range gf.Black {
		config.BlackCells = append(config.BlackCells, board.Coord{Row: b.Row, Col: b.Col})
	}
	for _, f := range gf.Fixed {
		if len(f.Letter) == 0 {
			return board.Config{}, fmt.Errorf("fixed cell (%d,%d) has an empty letter", f.Row, f.Col)
		}
		config.FixedCells = append(config.FixedCells, board.FixedCell{Row: f.Row, Col: f.Col, Letter: f.Letter[0]})
	}
	return config, nil
}

// loadWords reads a plain word list file, one word per line.
func loadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	return words, nil
}
