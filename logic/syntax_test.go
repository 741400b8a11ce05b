package logic_test

import (
	"testing"

	"github.com/gpassos/minilog/logic"
)

func TestIsVarName(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"X", true},
		{"Xyz_9", true},
		{"ABC", true},
		{"", false},
		{"x", false},
		{"_X", false},
		{"1X", false},
		{"X-", false},
		{"X y", false},
		{"Xé", false},
	}
	for _, test := range tests {
		if got := logic.IsVarName(test.text); got != test.want {
			t.Errorf("IsVarName(%q) = %v (!= %v)", test.text, got, test.want)
		}
	}
}

func TestIsConstName(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"x", true},
		{"xYz_9", true},
		{"abc", true},
		{"", false},
		{"X", false},
		{"_x", false},
		{"1x", false},
		{"x.", false},
		{"x y", false},
		{"xé", false},
	}
	for _, test := range tests {
		if got := logic.IsConstName(test.text); got != test.want {
			t.Errorf("IsConstName(%q) = %v (!= %v)", test.text, got, test.want)
		}
	}
}
