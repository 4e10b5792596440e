package metrics

import (
	"encoding/csv"
	"errors"
	"fanorona/game"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one player of a matchup.
type AgentConfig struct {
	ID        int            `yaml:"id"`
	AlphaBeta bool           `yaml:"alphaBeta"`
	Heuristic game.Heuristic `yaml:"heuristic"`
	Depth     int            `yaml:"depth"`
	Random    bool           `yaml:"random"` // Plays uniformly random legal moves instead of searching
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Green
	Agent2 int // AgentConfig.ID, plays Red
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh root/name/<timestamp> directory and writes all
// files there. Runs that start within the same millisecond get a -1, -2, ...
// suffix.
func NewWriter(root, name string) (*Writer, error) {
	parent := filepath.Join(root, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	for i := 0; ; i++ {
		baseDir := filepath.Join(parent, timestamp)
		if i > 0 {
			baseDir = fmt.Sprintf("%s-%d", baseDir, i)
		}
		err = os.Mkdir(baseDir, 0755)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		return &Writer{
			baseDir: baseDir,
		}, nil
	}
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "alpha_beta", "heuristic", "depth", "random"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.FormatBool(config.AlphaBeta),
			config.Heuristic.String(),
			strconv.Itoa(config.Depth),
			strconv.FormatBool(config.Random),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "reason", "start_time", "end_time", "duration", "total_moves", "green_tokens", "red_tokens"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.GreenTokens),
			strconv.Itoa(record.RedTokens),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "captured", "alpha_beta", "heuristic", "depth", "duration", "frontier", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			strconv.Itoa(record.Captured),
			strconv.FormatBool(record.AlphaBeta),
			record.Heuristic.String(),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Frontier),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
