package word

import (
	"testing"
)

func TestParseFeatures(t *testing.T) {
	feats := ParseFeatures("Case=Nom|Number=Sing")

	if len(feats) != 2 {
		t.Fatalf("expected 2 features, got %d", len(feats))
	}
	if feats["Case"] != "Nom" {
		t.Errorf("expected Case=Nom, got %q", feats["Case"])
	}
	if feats["Number"] != "Sing" {
		t.Errorf("expected Number=Sing, got %q", feats["Number"])
	}
}

func TestParseFeaturesEmpty(t *testing.T) {
	if feats := ParseFeatures(""); feats != nil {
		t.Fatalf("expected nil for empty string, got %v", feats)
	}
}

func TestParseFeaturesMalformed(t *testing.T) {
	feats := ParseFeatures("Case=Nom|garbage|=Sing")

	if len(feats) != 1 {
		t.Fatalf("expected only the valid item, got %v", feats)
	}
	if feats["Case"] != "Nom" {
		t.Errorf("expected Case=Nom, got %q", feats["Case"])
	}
}

func TestJoinFeaturesRoundtrip(t *testing.T) {
	in := "Case=Nom|Mood=Ind|Number=Sing"
	if got := JoinFeatures(ParseFeatures(in)); got != in {
		t.Fatalf("expected %q, got %q", in, got)
	}
}

func TestJoinFeaturesEmpty(t *testing.T) {
	if got := JoinFeatures(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
