package errors

import (
	"strings"
	"testing"
)

func TestValidateTreeText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid level order", "[1,2,3]", false},
		{"valid empty array", "[]", false},
		{"valid with spaces", " [1, null, 2] ", false},

		{"empty", "", true},
		{"whitespace only", "   \n", true},
		{"too long", strings.Repeat("1", MaxTreeTextLength+1), true},
		{"null byte", "[1,\x002]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTreeText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTreeText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTree) {
				t.Errorf("ValidateTreeText(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidTree)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"number", "42", false},
		{"empty", "", false},
		{"unicode", "ñ", false},

		{"newline", "a\nb", true},
		{"tab", "a\tb", true},
		{"too long", strings.Repeat("x", MaxLabelLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
