package common

import (
	"os"
	"testing"
)

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid absolute path", "/etc/motd", false},
		{"valid relative path", "a/b/c/file.txt", false},
		{"valid bare name", "file.txt", false},
		{"invalid - empty", "", true},
		{"invalid - NUL byte", "/etc/mo\x00td", true},
		{"invalid - trailing slash", "/etc/app/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", false},
		{"ascii", "hello\n", false},
		{"unicode", "héllo wörld ✓\n", false},
		{"crlf", "line\r\nline\r\n", false},
		{"invalid - bad utf-8", "\xff\xfe", true},
		{"invalid - NUL byte", "abc\x00def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFileMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    os.FileMode
		wantErr bool
	}{
		{"leading zero", "0644", 0644, false},
		{"no leading zero", "755", 0755, false},
		{"owner only", "0600", 0600, false},
		{"surrounding spaces", " 0700 ", 0700, false},
		{"invalid - zero", "0", 0, true},
		{"invalid - too large", "1777", 0, true},
		{"invalid - not octal", "0899", 0, true},
		{"invalid - empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileMode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFileMode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFileMode() = %o, want %o", got, tt.want)
			}
		})
	}
}

func TestValidateForks(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid - one", "1", false},
		{"valid - default", "5", false},
		{"valid - max", "64", false},
		{"invalid - zero", "0", true},
		{"invalid - too high", "65", true},
		{"invalid - negative", "-1", true},
		{"invalid - not numeric", "many", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForks(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForks() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBool(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"true", false},
		{"false", false},
		{"1", false},
		{"yes", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateBool(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBool() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("x"); err != nil {
		t.Errorf("ValidateNotEmpty(x) error = %v, want nil", err)
	}
	if err := ValidateNotEmpty("   "); err == nil {
		t.Error("ValidateNotEmpty(spaces) error = nil, want error")
	}
}
