package config

import "os"

func IsDebug() bool {
	return os.Getenv("FINCH_DEBUG") == "1"
}
