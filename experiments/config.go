package experiments

import (
	"fanorona/experiments/metrics"
	"fanorona/meta"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an experiment: a pool of agents and the pairs of them
// that play each other.
type Config struct {
	Name        string                `yaml:"name"`
	Output      string                `yaml:"output"`      // Root directory for results
	Games       int                   `yaml:"games"`       // Per matchup
	MaxTurns    int                   `yaml:"maxTurns"`    // Per game
	Parallelism int                   `yaml:"parallelism"` // Games played at once
	Seed        uint64                `yaml:"seed"`        // Base seed of random agents
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][]int               `yaml:"matchups"` // Pairs of agent ids
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, fills in defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	config.setDefaults()
	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "experiment"
	}
	if c.Output == "" {
		c.Output = "results"
	}
	if c.Games == 0 {
		c.Games = meta.GAMES_PER_MATCHUP
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = meta.MAX_TURNS
	}
	if c.Parallelism == 0 {
		c.Parallelism = 1
	}
}

func (c *Config) Validate() error {
	if c.Games < 0 || c.MaxTurns < 0 || c.Parallelism < 0 {
		return fmt.Errorf("games, maxTurns and parallelism must not be negative")
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no matchups configured")
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		if !agent.Random && agent.Depth < 0 {
			return fmt.Errorf("agent %d: negative depth %d", agent.ID, agent.Depth)
		}
		ids[agent.ID] = true
	}
	for i, matchup := range c.MatchUps {
		if len(matchup) != 2 {
			return fmt.Errorf("matchup %d: want 2 agent ids, got %d", i, len(matchup))
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("matchup %d: unknown agent id %d", i, id)
			}
		}
	}
	return nil
}

func (c *Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
