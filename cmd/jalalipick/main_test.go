package main

import (
	"reflect"
	"testing"
)

func TestRewriteBareYearArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"jalalipick"},
			want: []string{"jalalipick"},
		},
		{
			name: "bare year",
			in:   []string{"jalalipick", "1403"},
			want: []string{"jalalipick", "leap", "1403"},
		},
		{
			name: "persian digits",
			in:   []string{"jalalipick", "۱۴۰۲"},
			want: []string{"jalalipick", "leap", "۱۴۰۲"},
		},
		{
			name: "after value flag",
			in:   []string{"jalalipick", "--format", "text", "1403"},
			want: []string{"jalalipick", "--format", "text", "leap", "1403"},
		},
		{
			name: "after equals flag",
			in:   []string{"jalalipick", "--config-dir=/tmp/x", "1403"},
			want: []string{"jalalipick", "--config-dir=/tmp/x", "leap", "1403"},
		},
		{
			name: "after bool flag",
			in:   []string{"jalalipick", "--pretty", "1403"},
			want: []string{"jalalipick", "--pretty", "leap", "1403"},
		},
		{
			name: "after double dash",
			in:   []string{"jalalipick", "--", "1403"},
			want: []string{"jalalipick", "--", "leap", "1403"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"jalalipick", "days", "12", "1403"},
			want: []string{"jalalipick", "days", "12", "1403"},
		},
		{
			name: "flag value that looks like a year",
			in:   []string{"jalalipick", "--config-dir", "1403"},
			want: []string{"jalalipick", "--config-dir", "1403"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteBareYearArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}
