// Package flag provides viper-backed accessors for persistent flags.
package flag

import "github.com/spf13/viper"

// Verbose returns the count of the --verbose flag.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of the --quiet flag.
func Quiet() int {
	return viper.GetInt("quiet")
}

// DryRun returns true when --dryrun is given: entries are translated and
// logged, but no output file is written.
func DryRun() bool {
	return viper.GetBool("dryrun")
}

// ConfigFile returns the --config flag value.
func ConfigFile() string {
	return viper.GetString("config")
}
