package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseFlags tests flag parsing with various argument combinations.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want StructuredConfig
	}{
		{
			name: "no flags",
			args: []string{"forohub"},
			want: StructuredConfig{},
		},
		{
			name: "server url and dsn",
			args: []string{"forohub", "-a", "http://localhost:8080/api", "-d", "test.db"},
			want: StructuredConfig{
				Adapter: Adapter{ServerURL: "http://localhost:8080/api"},
				Storage: Storage{DB: DB{DSN: "test.db"}},
			},
		},
		{
			name: "timeouts and page size",
			args: []string{"forohub", "-request-timeout", "15s", "-page-size", "20", "-refresh-interval", "1m"},
			want: StructuredConfig{
				App:     App{PageSize: 20},
				Adapter: Adapter{RequestTimeout: 15 * time.Second},
				Workers: Workers{RefreshInterval: time.Minute},
			},
		},
		{
			name: "json config path",
			args: []string{"forohub", "-c", "/etc/forohub/config.json"},
			want: StructuredConfig{JSONFilePath: "/etc/forohub/config.json"},
		},
		{
			name: "json config path alias",
			args: []string{"forohub", "-config", "/etc/forohub/config.json"},
			want: StructuredConfig{JSONFilePath: "/etc/forohub/config.json"},
		},
	}

	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
			os.Args = tt.args

			got := ParseFlags()
			assert.Equal(t, &tt.want, got)
		})
	}
}
