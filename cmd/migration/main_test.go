package main

import "testing"

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "defaults to one", args: nil, want: 1},
		{name: "explicit", args: []string{"3"}, want: 3},
		{name: "zero rejected", args: []string{"0"}, wantErr: true},
		{name: "garbage rejected", args: []string{"x"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSteps(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse steps: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected steps: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version to fail")
	}
	got, err := parseVersion(" 1776211260 ")
	if err != nil {
		t.Fatalf("parse version: %v", err)
	}
	if got != 1776211260 {
		t.Fatalf("unexpected version: %d", got)
	}
}
