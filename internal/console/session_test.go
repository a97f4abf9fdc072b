package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"farmtech/internal/repository"
	"farmtech/internal/service"
)

// runSession feeds the scripted lines to a fresh session and returns the
// transcript it printed.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()

	svc := service.NewPlotService(repository.NewPlotRepository())
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	session := NewSession(svc, zerolog.Nop(), in, &out, "FarmTech Solutions")
	if err := session.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestSessionAddComputeAndList(t *testing.T) {
	out := runSession(t,
		"1", "coffee", "100", "20", // add a 100x20 row crop
		"5", "0", "glyphosate", "abc", "10", "5", // compute, re-prompting past the bad row count
		"2", // list
		"6", // exit
	)

	for _, want := range []string{
		"> Plot added successfully!",
		"> Invalid entry. Please type a number.",
		"> The coffee plot needs 5.00 liters of glyphosate.",
		"> Input record saved on the plot.",
		"Index 0: coffee | area: 2000.00 m2",
		"glyphosate - 5.00 L",
		"Thank you for using FarmTech Solutions.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q\n%s", want, out)
		}
	}
}

func TestSessionRejectsUnknownMenuOption(t *testing.T) {
	out := runSession(t, "9", "6")
	if !strings.Contains(out, "> Invalid option. Try again.") {
		t.Errorf("transcript missing the invalid-option message\n%s", out)
	}
}

func TestSessionRejectsUnknownCropType(t *testing.T) {
	out := runSession(t, "1", "wheat", "6")
	if !strings.Contains(out, "> Unknown crop type. Try again.") {
		t.Errorf("transcript missing the unknown-crop message\n%s", out)
	}
	if strings.Contains(out, "> Plot added successfully!") {
		t.Error("plot was added despite the unknown crop type")
	}
}

func TestSessionNormalizesCropToken(t *testing.T) {
	out := runSession(t, "1", "  COFFEE  ", "10", "10", "6")
	if !strings.Contains(out, "> Plot added successfully!") {
		t.Errorf("uppercase token was not accepted\n%s", out)
	}
}

func TestSessionRepromptsOnNonPositiveDimensions(t *testing.T) {
	out := runSession(t,
		"1", "corn", "-5", "50", // rejected radius, then a valid one
		"2",
		"6",
	)
	if !strings.Contains(out, "> Dimensions must be positive. Try again.") {
		t.Errorf("transcript missing the dimension message\n%s", out)
	}
	if !strings.Contains(out, "area: 7853.98 m2") {
		t.Errorf("transcript missing the corn plot listing\n%s", out)
	}
}

func TestSessionUpdateReplacesPlot(t *testing.T) {
	out := runSession(t,
		"1", "coffee", "100", "20",
		"3", "0", "corn", "50", // update index 0 to a circular crop
		"2",
		"6",
	)
	if !strings.Contains(out, "> Plot at index 0 updated successfully!") {
		t.Errorf("transcript missing the update confirmation\n%s", out)
	}
	if !strings.Contains(out, "Index 0: corn") {
		t.Errorf("listing still shows the old crop\n%s", out)
	}
}

func TestSessionDeleteShrinksListing(t *testing.T) {
	out := runSession(t,
		"1", "coffee", "100", "20",
		"4", "0",
		"2",
		"6",
	)
	if !strings.Contains(out, "> Plot at index 0 removed successfully!") {
		t.Errorf("transcript missing the delete confirmation\n%s", out)
	}
	if !strings.Contains(out, "> No plots registered.") {
		t.Errorf("listing not empty after delete\n%s", out)
	}
}

func TestSessionIndexSelectionGuards(t *testing.T) {
	out := runSession(t, "4", "6")
	if !strings.Contains(out, "> No plots registered to select.") {
		t.Errorf("transcript missing the empty-registry guard\n%s", out)
	}

	out = runSession(t,
		"1", "coffee", "10", "10",
		"4", "7", // out of range
		"4", "x", // not a number
		"6",
	)
	if !strings.Contains(out, "> Invalid index.") {
		t.Errorf("transcript missing the out-of-range message\n%s", out)
	}
	if !strings.Contains(out, "> Invalid entry. Type a whole number.") {
		t.Errorf("transcript missing the non-numeric index message\n%s", out)
	}
}

func TestSessionEndsCleanlyOnClosedInput(t *testing.T) {
	svc := service.NewPlotService(repository.NewPlotRepository())
	var out bytes.Buffer

	session := NewSession(svc, zerolog.Nop(), strings.NewReader("2\n"), &out, "FarmTech Solutions")
	if err := session.Run(); err != nil {
		t.Fatalf("Run after EOF: %v", err)
	}
}
