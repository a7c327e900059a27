package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

func TestSearch(t *testing.T) {
	m := testManifest(t)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"empty query matches all", Query{}, []string{"input", "auto-complete", "radio-group", "payment-form"}},
		{"text", Query{Text: "COMPLETE"}, []string{"auto-complete"}},
		{"kind", Query{Kind: manifest.KindBlock}, []string{"payment-form"}},
		{"package", Query{Package: "framer-motion"}, []string{"auto-complete", "radio-group"}},
		{"local dep", Query{Dep: "input"}, []string{"auto-complete", "payment-form"}},
		{"remote dep", Query{Dep: "popover.json"}, []string{"auto-complete"}},
		{"combined", Query{Kind: manifest.KindUI, Package: "lucide-react"}, []string{"auto-complete"}},
		{"no match", Query{Text: "carousel"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Search(m, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
