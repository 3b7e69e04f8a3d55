package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AUTH_SHARED_PASSWORD", "letmein")
	t.Setenv("PORT", "")
	t.Setenv("IMAGE_MODEL", "")
	t.Setenv("IMAGE_SIZE", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.ImageModel != "gpt-image-1" {
		t.Fatalf("ImageModel mismatch: got %q want %q", cfg.ImageModel, "gpt-image-1")
	}
	if cfg.ImageSize != "1024x1024" {
		t.Fatalf("ImageSize mismatch: got %q want %q", cfg.ImageSize, "1024x1024")
	}
	if cfg.MaxUploadBytes != 50<<20 {
		t.Fatalf("MaxUploadBytes mismatch: got %d want %d", cfg.MaxUploadBytes, 50<<20)
	}
	if cfg.DefaultLocale != "ko" {
		t.Fatalf("DefaultLocale mismatch: got %q want %q", cfg.DefaultLocale, "ko")
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AUTH_SHARED_PASSWORD", "letmein")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error when OPENAI_API_KEY is unset")
	}
}

func TestLoadConfigRequiresCredentialSource(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AUTH_SHARED_PASSWORD", "")
	t.Setenv("AUTH_USERS", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error when no credential source is configured")
	}
}

func TestLoadConfigRosterMode(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AUTH_SHARED_PASSWORD", "")
	t.Setenv("AUTH_USERS", "teacher01:s3cretA!")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.UserRoster != "teacher01:s3cretA!" {
		t.Fatalf("UserRoster mismatch: got %q", cfg.UserRoster)
	}
}
