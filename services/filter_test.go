package services

import (
	"net/url"
	"reflect"
	"testing"

	"componentcreator/testhelpers"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Filter
		wantErr bool
	}{
		{"empty", "", Filter{}, false},
		{"one type", "type=Slabs", Filter{Types: []string{"Slabs"}}, false},
		{
			"types and materials",
			"type=Slabs&type=Roofs&material=Concrete",
			Filter{Types: []string{"Slabs", "Roofs"}, Materials: []string{"Concrete"}},
			false,
		},
		{"unknown type", "type=Facades", Filter{}, true},
		{"unknown material", "material=Steel", Filter{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad query: %v", err)
			}
			got, err := ParseFilter(q)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilterComponents(t *testing.T) {
	listing := testhelpers.NewSampleStore(t).ListComponents()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			"no selection keeps known values",
			Filter{},
			[]string{"AW-MT-01", "IW-CB-02", "TRD-tr-HBV-GKL45-si", "DA-CO-04"},
		},
		{
			"by type",
			Filter{Types: []string{"Slabs", "Roofs"}},
			[]string{"TRD-tr-HBV-GKL45-si", "DA-CO-04"},
		},
		{
			"by material",
			Filter{Materials: []string{"Mass Timber"}},
			[]string{"AW-MT-01", "TRD-tr-HBV-GKL45-si"},
		},
		{
			"type and material",
			Filter{Types: []string{"External walls"}, Materials: []string{"Mass Timber"}},
			[]string{"AW-MT-01"},
		},
		{
			"no match",
			Filter{Types: []string{"Partition walls"}},
			[]string{},
		},
		{
			"unknown value never matches",
			Filter{Types: []string{"Facades"}},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterComponents(listing, tt.filter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterComponents() = %v, want %v", got, tt.want)
			}
		})
	}
}
