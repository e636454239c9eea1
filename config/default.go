package config

import (
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/spf13/viper"
)

func setReporterDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "info")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./"+global.DefaultLogFileName)
	viper.SetDefault("minimum-coverage", "0")
	viper.SetDefault("working-directory", global.DefaultWorkingDirectory)
	viper.SetDefault("artifact-store", LocalStore)
	viper.SetDefault("api-retries", 0)
	viper.SetDefault("keep-temp", true)
	viper.SetDefault("verbose", false)
}
