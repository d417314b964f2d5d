package prompt

import (
	"strings"
	"testing"
)

func TestBuildWithoutProfile(t *testing.T) {
	b := NewBuilder()

	got := b.Build(nil)
	if !strings.Contains(got, "You are JoJo") {
		t.Error("prompt missing persona preamble")
	}
	if strings.Contains(got, "About this user") {
		t.Error("nil profile must not render a personalization block")
	}
}

func TestBuildOmitsAbsentFields(t *testing.T) {
	b := NewBuilder()

	got := b.Build(&Profile{
		Region: "Nigeria",
		Goals:  []string{"lose weight", "build muscle"},
	})

	if !strings.Contains(got, "- Region: Nigeria") {
		t.Error("present region field not rendered")
	}
	if !strings.Contains(got, "- Goals: lose weight, build muscle") {
		t.Error("present goals not rendered")
	}
	for _, absent := range []string{"Age:", "Gender:", "Fitness level:", "Budget:", "Dietary restrictions:"} {
		if strings.Contains(got, absent) {
			t.Errorf("absent field %q rendered in prompt", absent)
		}
	}
}

func TestBuildEmptyProfileEqualsBarePersona(t *testing.T) {
	b := NewBuilder()

	if b.Build(&Profile{}) != b.Build(nil) {
		t.Error("profile with no set fields should render the bare persona")
	}
}
