package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-a", ":6000", "-w", "1"}

	cfg := LoadConfig()

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, 1*time.Minute, cfg.LockoutDuration)
	// untouched defaults
	assert.Equal(t, 5, cfg.LockoutThreshold)
	assert.Equal(t, "secretKey", cfg.SecretKey)
}
