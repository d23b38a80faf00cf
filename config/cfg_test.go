package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	if cfg.Document.Language != "en_us" {
		t.Errorf("Default language = %q, want %q", cfg.Document.Language, "en_us")
	}

	if _, ok := cfg.Document.Assets.AssetBase("hexcasting"); !ok {
		t.Error("Default config must carry an asset URL for the hexcasting namespace")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	langPath := filepath.Join(tmpDir, "ru_ru.yaml")

	if err := os.WriteFile(langPath, []byte("key: value\n"), 0644); err != nil {
		t.Fatalf("Failed to write language file: %v", err)
	}

	configContent := `version: 1
document:
  language: ru_ru
  language_file_path: ` + langPath + `
  output_name_template: "{{ .Title }}-{{ .Language }}"
  assets:
    mymod: https://assets.example.com/mymod
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.Language != "ru_ru" {
		t.Errorf("Language = %q, want %q", cfg.Document.Language, "ru_ru")
	}

	if cfg.Document.OutputNameTemplate != "{{ .Title }}-{{ .Language }}" {
		t.Errorf("OutputNameTemplate = %q", cfg.Document.OutputNameTemplate)
	}

	// file values are overlaid on defaults, both namespaces must resolve
	if _, ok := cfg.Document.Assets.AssetBase("mymod"); !ok {
		t.Error("Expected asset URL for mymod namespace")
	}
	if _, ok := cfg.Document.Assets.AssetBase("hexcasting"); !ok {
		t.Error("Expected default hexcasting asset URL to survive the overlay")
	}

	if cfg.Logging.FileLogger.Level != "debug" {
		t.Errorf("FileLogger level = %q, want %q", cfg.Logging.FileLogger.Level, "debug")
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  no_such_option: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("LoadConfiguration() with unknown field expected error, got none")
	}
}

func TestLoadConfiguration_BadAssetURL(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  assets:
    mymod: not-a-url
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("LoadConfiguration() with malformed asset URL expected error, got none")
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("unmarshalConfig() of prepared template error = %v", err)
	}

	dumped, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(dumped), "language: en_us") {
		t.Errorf("Dump() = %q, missing document language", dumped)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"simple", "simple"},
		{"..hidden", "hidden"},
		{"", "_bad_file_name_"},
	}
	for _, tc := range tests {
		if got := CleanFileName(tc.in); got != tc.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
