package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

func TestArticlePatchEmpty(t *testing.T) {
	cases := []struct {
		name  string
		patch ArticlePatch
		want  bool
	}{
		{"nothing", ArticlePatch{}, true},
		{"empty strings", ArticlePatch{Title: strPtr(""), Content: strPtr(""), Style: strPtr("")}, true},
		{"title", ArticlePatch{Title: strPtr("X")}, false},
		{"style only", ArticlePatch{Style: strPtr(StyleNews)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.patch.Empty(); got != tc.want {
				t.Errorf("Empty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestArticlePatchApply(t *testing.T) {
	a := Article{ID: 1, Title: "old", Content: "body", Style: StyleStory}
	ArticlePatch{Title: strPtr("new"), Content: strPtr("")}.Apply(&a)

	want := Article{ID: 1, Title: "new", Content: "body", Style: StyleStory}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestStylesReturnsCopy(t *testing.T) {
	s := Styles()
	s[0] = "Rant"

	if Styles()[0] != StyleListicle {
		t.Error("Styles must not expose the backing slice")
	}
}
