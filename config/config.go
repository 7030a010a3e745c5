package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
ProductVersion is the current version of this module.
*/
const ProductVersion = "1.0.0"

/*
Known configuration keys.
*/
const (
	DefaultEntryNode = "DefaultEntryNode"
	TraceBufferSize  = "TraceBufferSize"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	DefaultEntryNode: "entry",
	TraceBufferSize:  64,
}

/*
Config is the actual configuration in effect.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{}, len(DefaultConfig))
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data

	errorutil.AssertTrue(Int(TraceBufferSize) > 0,
		fmt.Sprintf("%s must be positive", TraceBufferSize))
	errorutil.AssertTrue(Str(DefaultEntryNode) != "",
		fmt.Sprintf("%s must not be empty", DefaultEntryNode))
}

/*
Str reads a config value as a string.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return int(ret)
}
