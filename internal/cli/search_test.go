package cli

import (
	"testing"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
	"github.com/winkty-official/winkty-ui-sub001/internal/registry"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		kind    string
		pkg     string
		dep     string
		want    registry.Query
		wantErr bool
	}{
		{"empty", nil, "", "", "", registry.Query{}, false},
		{"text is trimmed", []string{"  text "}, "", "", "", registry.Query{Text: "text"}, false},
		{"registry kind spelling", nil, "registry:block", "", "", registry.Query{Kind: manifest.KindBlock}, false},
		{"filters", nil, "ui", "framer-motion", "input", registry.Query{Kind: manifest.KindUI, Package: "framer-motion", Dep: "input"}, false},
		{"bad kind", nil, "widget", "", "", registry.Query{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildQuery(tt.args, tt.kind, tt.pkg, tt.dep)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildQuery error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("buildQuery = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNoMatchMessage(t *testing.T) {
	tests := []struct {
		q    registry.Query
		want string
	}{
		{registry.Query{}, "No components found."},
		{registry.Query{Text: "carousel"}, `No components found matching "carousel".`},
		{registry.Query{Kind: manifest.KindBlock, Package: "zod"}, "No components found with --kind=block with --package=zod."},
	}
	for _, tt := range tests {
		if got := noMatchMessage(tt.q); got != tt.want {
			t.Errorf("noMatchMessage(%+v) = %q, want %q", tt.q, got, tt.want)
		}
	}
}
