package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/minesweeper/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultDifficultiesPath 难度配置文件的嵌入路径
const DefaultDifficultiesPath = "data/difficulties.yaml"

// ErrUnknownDifficulty 请求的难度名不存在
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty 单个难度预设
// 难度名同时用作最高分记录的存储键
type Difficulty struct {
	Name  string `yaml:"name"`  // 难度ID，如 "easy"
	Label string `yaml:"label"` // 界面显示名，如 "Easy"
	Mines int    `yaml:"mines"` // 地雷数量
}

// DifficultyConfig 难度配置文件结构
type DifficultyConfig struct {
	Difficulties []Difficulty `yaml:"difficulties"`
}

// LoadDifficulties 从嵌入的 YAML 文件加载难度配置
func LoadDifficulties(path string) (*DifficultyConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file %s: %w", path, err)
	}

	cfg, err := ParseDifficulties(data)
	if err != nil {
		return nil, fmt.Errorf("invalid difficulty config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDifficulties 解析并验证 YAML 格式的难度配置
func ParseDifficulties(data []byte) (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}

	if err := validateDifficulties(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateDifficulties 验证难度配置的完整性和合法性
func validateDifficulties(cfg *DifficultyConfig) error {
	if len(cfg.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty is required")
	}

	maxMines := GridRows*GridColumns - 1
	seen := make(map[string]bool, len(cfg.Difficulties))

	for i := range cfg.Difficulties {
		d := &cfg.Difficulties[i]
		if d.Name == "" {
			return fmt.Errorf("difficulty #%d: name is required", i)
		}
		if seen[d.Name] {
			return fmt.Errorf("difficulty %s: duplicate name", d.Name)
		}
		seen[d.Name] = true

		if d.Mines < 1 || d.Mines > maxMines {
			return fmt.Errorf("difficulty %s: mines must be in [1, %d], got %d", d.Name, maxMines, d.Mines)
		}

		if d.Label == "" {
			d.Label = d.Name
		}
	}

	return nil
}

// Get 按名称查找难度
func (c *DifficultyConfig) Get(name string) (Difficulty, error) {
	for _, d := range c.Difficulties {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// Names 按配置顺序返回全部难度名
func (c *DifficultyConfig) Names() []string {
	names := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		names[i] = d.Name
	}
	return names
}
