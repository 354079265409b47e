package app_info

// NAME the name of our application
const NAME = "noip-sensor"

// VERSION the current version of our application
const VERSION = "v1.3.0"

// UserAgent returns the user-agent sent with every outbound request
func UserAgent() string {
	return NAME + "/" + VERSION
}
