package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ErrBadScale is returned when a scale multiplier is not a positive integer.
var ErrBadScale = fmt.Errorf("scale multiplier must be a positive integer")

type Config struct {
	Dataset    Dataset  `json:"dataset" mapstructure:"dataset"`
	Database   Database `json:"database" mapstructure:"database"`
	Schema     Schema   `json:"schema" mapstructure:"schema"`
	ExportPath string   `json:"export_path" mapstructure:"export_path"`
}

// Dataset holds the entity counts for one benchmark run. Users and
// Courses are top-level counts and are the only values affected by the
// scale multiplier; the remaining fan-out counts stay fixed so that a
// scaled run grows the tree in breadth, not in depth.
//
// A zero count in the config file is treated as unset and replaced by
// the built-in default. There is no way to request a zero-count run
// from a config file; the builder's count-0 handling exists for
// callers constructing Dataset values directly.
type Dataset struct {
	Users             int `json:"users" mapstructure:"users"`
	Courses           int `json:"courses" mapstructure:"courses"`
	LessonsPerCourse  int `json:"lessons_per_course" mapstructure:"lessons_per_course"`
	QuizzesPerLesson  int `json:"quizzes_per_lesson" mapstructure:"quizzes_per_lesson"`
	QuestionsPerQuiz  int `json:"questions_per_quiz" mapstructure:"questions_per_quiz"`
	CoursesPerStudent int `json:"courses_per_student" mapstructure:"courses_per_student"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Schema carries the DDL admission-control budget: how long to wait for
// a schema statement to complete and how often to poll for it.
type Schema struct {
	TimeoutMs int `json:"timeout_ms" mapstructure:"timeout_ms"`
	PollMs    int `json:"poll_ms" mapstructure:"poll_ms"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration used when no config file
// is present. The dataset counts match the original small demo run.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Dataset.Users == 0 {
		c.Dataset.Users = 10
	}
	if c.Dataset.Courses == 0 {
		c.Dataset.Courses = 20
	}
	if c.Dataset.LessonsPerCourse == 0 {
		c.Dataset.LessonsPerCourse = 5
	}
	if c.Dataset.QuizzesPerLesson == 0 {
		c.Dataset.QuizzesPerLesson = 2
	}
	if c.Dataset.QuestionsPerQuiz == 0 {
		c.Dataset.QuestionsPerQuiz = 3
	}
	if c.Dataset.CoursesPerStudent == 0 {
		c.Dataset.CoursesPerStudent = 2
	}
	if c.Database.Provider == "" {
		c.Database.Provider = "mongodb"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "EDUBENCH_DB_URL"
	}
	if c.Schema.TimeoutMs == 0 {
		c.Schema.TimeoutMs = 40000
	}
	if c.Schema.PollMs == 0 {
		c.Schema.PollMs = 3000
	}
	if c.ExportPath == "" {
		c.ExportPath = "bench_out"
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"mongodb", "mongo", "postgresql", "postgres", "mysql", "sqlite", "sqlite3", "memory"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	counts := []int{
		c.Dataset.Users, c.Dataset.Courses, c.Dataset.LessonsPerCourse,
		c.Dataset.QuizzesPerLesson, c.Dataset.QuestionsPerQuiz, c.Dataset.CoursesPerStudent,
	}
	for _, n := range counts {
		if n < 0 {
			return fmt.Errorf("dataset counts cannot be negative")
		}
	}

	if c.Schema.TimeoutMs <= 0 || c.Schema.PollMs <= 0 {
		return fmt.Errorf("schema timeout and poll interval must be positive")
	}

	return nil
}

// Scaled returns a copy of the config with the top-level counts
// multiplied by m. Fan-out counts are left untouched. A multiplier
// below 1 is rejected rather than coerced.
func (c *Config) Scaled(m int) (*Config, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScale, m)
	}

	scaled := *c
	scaled.Dataset.Users = c.Dataset.Users * m
	scaled.Dataset.Courses = c.Dataset.Courses * m
	return &scaled, nil
}
