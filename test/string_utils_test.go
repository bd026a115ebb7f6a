package main

import (
	"database/sql"
	"testing"

	"app/utils"
)

func TestNullStringToStringPtr(t *testing.T) {
	note := "short pick on aisle 4"
	cases := []struct {
		name string
		in   sql.NullString
		want *string
	}{
		{"valid string", sql.NullString{String: note, Valid: true}, &note},
		{"null value", sql.NullString{Valid: false}, nil},
		{"valid empty string", sql.NullString{String: "", Valid: true}, new(string)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := utils.NullStringToStringPtr(tc.in)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("expected %q, got %q", *tc.want, *got)
			}
		})
	}
}
