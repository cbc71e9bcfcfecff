package config

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    float64
	MultilevelFeedbackQueueLevelsTimeQuantum []float64
	LogLevel                                 string
	LogFormat                                string
}

// LoadSchedulerConfig reads path, or config.yaml from the working directory
// when path is empty. CPUSIM_* environment variables override file values,
// e.g. CPUSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM=4.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2.0)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []float64{5, 8})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("cpusim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("no config file found, using defaults")
	}

	levels, err := toFloatSlice(v.Get("scheduler.multilevel_feedback_queue.levels_time_quantum"))
	if err != nil {
		return nil, err
	}

	c := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		RoundRobinTimeQuantum:                    v.GetFloat64("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: levels,
		LogLevel:                                 v.GetString("log.level"),
		LogFormat:                                v.GetString("log.format"),
	}
	log.WithField("file", v.ConfigFileUsed()).Debug("scheduler config loaded")
	return c, nil
}
