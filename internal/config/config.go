package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"westscore/internal/domain"
)

const (
	DefaultConfigPath        = "data/score_config.json"
	DefaultStorageCollection = "west_score"
	DefaultStorageKey        = "whist_score_games_v2"
	DefaultTeamAName         = "لنا"
	DefaultTeamBName         = "لهم"
	DefaultShareTTL          = 7 * 24 * time.Hour
)

// ScoreConfig is the server-wide configuration for new games and persistence.
type ScoreConfig struct {
	Settings          domain.GameSettings `json:"default_settings"`
	TeamAName         string              `json:"team_a_name"`
	TeamBName         string              `json:"team_b_name"`
	Titles            []string            `json:"titles"`
	StorageCollection string              `json:"storage_collection"`
	StorageKey        string              `json:"storage_key"`
	// ShareTTLSeconds is how long a read-only scoreboard link stays valid.
	ShareTTLSeconds int `json:"share_ttl_seconds"`
}

// ShareTTL returns the share token lifetime.
func (c *ScoreConfig) ShareTTL() time.Duration {
	if c.ShareTTLSeconds <= 0 {
		return DefaultShareTTL
	}
	return time.Duration(c.ShareTTLSeconds) * time.Second
}

var defaultTitles = []string{
	"معركة الأبطال",
	"الليلة بلا رحمة",
	"جهز نفسك للهزيمة",
	"الاختبار النهائي",
	"ورق القدر",
	"النصر ولا العار",
	"مباراة الانتقام",
	"ليلة الجمعة الحامية",
	"الأساطير ما بتموت",
	"الهزيمة الساحقة",
	"الفايز ياخد كل حاجة",
	"الموقف الأخير",
	"ما في صحاب اليوم",
	"حقوق التفاخر",
	"الحرب الكبيرة",
	"الكرامة على المحك",
	"لعبة القروش",
	"مدمر الصداقات",
	"مباراة الثأر",
	"المعركة الفاصلة",
}

// Default returns the built-in configuration.
func Default() *ScoreConfig {
	return &ScoreConfig{
		Settings:          domain.DefaultSettings(),
		TeamAName:         DefaultTeamAName,
		TeamBName:         DefaultTeamBName,
		Titles:            append([]string(nil), defaultTitles...),
		StorageCollection: DefaultStorageCollection,
		StorageKey:        DefaultStorageKey,
		ShareTTLSeconds:   int(DefaultShareTTL / time.Second),
	}
}

var (
	cfg      *ScoreConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadScoreConfig loads the configuration from path. Only the first call reads the
// file; later calls return the first result.
func LoadScoreConfig(path string) error {
	loadOnce.Do(func() {
		c, err := Parse(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// Parse reads and validates a config file. Keys missing from the file keep their
// built-in defaults.
func Parse(path string) (*ScoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read score config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score config: %w", err)
	}
	if err := c.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("score config default_settings: %w", err)
	}
	if len(c.Titles) == 0 {
		c.Titles = append([]string(nil), defaultTitles...)
	}
	return c, nil
}

// GetScoreConfig returns the loaded configuration, or the built-in defaults when
// nothing was loaded.
func GetScoreConfig() *ScoreConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}
