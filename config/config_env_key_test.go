package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "dreamcrm",
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readTimeout": "10s",
			},
		},
		"state": map[string]any{
			"path": "dreamcrm.db",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "HTTP_TIMEOUTS_READTIMEOUT", want: "http.timeouts.readTimeout"},
		{envKey: "STATE_PATH", want: "state.path"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
