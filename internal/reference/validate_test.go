package reference

import "testing"

func TestValidateWord(t *testing.T) {
	tests := []struct {
		word    string
		wantErr bool
	}{
		{"hello", false},
		{"don't", false},
		{"café", false},
		{"", true},
		{"   ", true},
		{"two words", true},
		{"42", true},
		{"-x", true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if err := ValidateWord(tt.word); (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.word, err, tt.wantErr)
			}
		})
	}
}
