package tutor

import (
	"reflect"
	"testing"
)

func TestExtractNextSteps_DashAndStarMarkers(t *testing.T) {
	text := "Here's what to try next:\n" +
		"- Review the chain rule\n" +
		"Some explanation in between.\n" +
		"* Practice with polynomials\n"

	steps := ExtractNextSteps(text)

	want := []string{"Review the chain rule", "Practice with polynomials"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestExtractNextSteps_TruncatesToThree(t *testing.T) {
	text := "- one\n- two\n- three\n- four\n- five"

	steps := ExtractNextSteps(text)

	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestExtractNextSteps_PreservesOrder(t *testing.T) {
	text := "intro\n* zig\n- zag\nmiddle\n* zog"

	steps := ExtractNextSteps(text)

	want := []string{"zig", "zag", "zog"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestExtractNextSteps_IndentedBullets(t *testing.T) {
	text := "next steps:\n  - indented step\n\t* tabbed step"

	steps := ExtractNextSteps(text)

	want := []string{"indented step", "tabbed step"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestExtractNextSteps_NoBulletsReturnsEmpty(t *testing.T) {
	steps := ExtractNextSteps("Just a plain explanation.\nNo lists here.")

	if len(steps) != 0 {
		t.Fatalf("expected empty, got %v", steps)
	}
	if steps == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestExtractNextSteps_IgnoresBareMarkers(t *testing.T) {
	text := "-\n* \n-no space\n- real step"

	steps := ExtractNextSteps(text)

	want := []string{"real step"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
}

func TestExtractNextSteps_EmptyInput(t *testing.T) {
	if steps := ExtractNextSteps(""); len(steps) != 0 {
		t.Fatalf("expected empty, got %v", steps)
	}
}
