package experiments

import (
	"fanorona/game"
	"fanorona/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
name: heuristics
games: 4
seed: 42
agents:
  - id: 1
    depth: 2
    alphaBeta: true
    heuristic: informed
  - id: 2
    depth: 1
    heuristic: Counting
  - id: 3
    random: true
matchups:
  - [1, 2]
  - [2, 3]
`

func TestParseConfig(t *testing.T) {
	t.Run("defaults and heuristics", func(t *testing.T) {
		config, err := ParseConfig([]byte(sampleConfig))
		require.NoError(t, err)

		require.Equal(t, "heuristics", config.Name)
		require.Equal(t, "results", config.Output)
		require.Equal(t, 4, config.Games)
		require.Equal(t, meta.MAX_TURNS, config.MaxTurns)
		require.Equal(t, 1, config.Parallelism)
		require.Equal(t, uint64(42), config.Seed)
		require.Len(t, config.Agents, 3)
		require.Equal(t, game.Informed, config.Agents[0].Heuristic)
		require.True(t, config.Agents[0].AlphaBeta)
		require.Equal(t, game.Counting, config.Agents[1].Heuristic, "heuristic names are case-insensitive")
		require.True(t, config.Agents[2].Random)
		require.Equal(t, [][]int{{1, 2}, {2, 3}}, config.MatchUps)
	})

	t.Run("games default", func(t *testing.T) {
		config, err := ParseConfig([]byte("agents: [{id: 1}]\nmatchups: [[1, 1]]\n"))
		require.NoError(t, err)
		require.Equal(t, meta.GAMES_PER_MATCHUP, config.Games)
	})

	invalid := map[string]string{
		"unknown heuristic":  "agents: [{id: 1, heuristic: greedy}]\nmatchups: [[1, 1]]\n",
		"no matchups":        "agents: [{id: 1}]\n",
		"unknown agent":      "agents: [{id: 1}]\nmatchups: [[1, 2]]\n",
		"duplicate agent":    "agents: [{id: 1}, {id: 1}]\nmatchups: [[1, 1]]\n",
		"three seats":        "agents: [{id: 1}]\nmatchups: [[1, 1, 1]]\n",
		"negative depth":     "agents: [{id: 1, depth: -2}]\nmatchups: [[1, 1]]\n",
		"negative games":     "games: -1\nagents: [{id: 1}]\nmatchups: [[1, 1]]\n",
		"malformed document": "agents: {id: [\n",
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "heuristics", config.Name)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
