package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
		},
		"jwt": map[string]any{
			"secretKey":                "",
			"accessTokenExpireMinutes": 30,
		},
		"http": map[string]any{
			"allowOrigins": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "JWT_ACCESSTOKENEXPIREMINUTES", want: "jwt.accessTokenExpireMinutes"},
		{envKey: "HTTP_ALLOWORIGINS", want: "http.allowOrigins"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.JWT.Algorithm != "HS256" {
		t.Fatalf("default algorithm = %q, want HS256", cfg.JWT.Algorithm)
	}
	if cfg.JWT.AccessTokenExpireMinutes != 30 {
		t.Fatalf("default access token expiry = %d, want 30", cfg.JWT.AccessTokenExpireMinutes)
	}
	if cfg.JWT.RefreshTokenExpireDays != 7 {
		t.Fatalf("default refresh token expiry = %d, want 7", cfg.JWT.RefreshTokenExpireDays)
	}
}
