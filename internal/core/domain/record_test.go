package domain

import (
	"encoding/json"
	"testing"
)

func TestFloat_UnmarshalCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want Float
	}{
		{`1.75`, 1.75},
		{`"1.75"`, 1.75},
		{`"abc"`, 0},
		{`""`, 0},
		{`null`, 0},
		{`true`, 0},
		{`0`, 0},
	}
	for _, tc := range cases {
		var f Float
		if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
			t.Fatalf("Unmarshal(%s): unexpected error %v", tc.in, err)
		}
		if f != tc.want {
			t.Fatalf("Unmarshal(%s) = %v, want %v", tc.in, f, tc.want)
		}
	}
}

func TestFloat_MarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(Float(70.5))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "70.5" {
		t.Fatalf("got %s, want 70.5", out)
	}
}

func TestIdentity_MetadataRolePrecedence(t *testing.T) {
	i := &Identity{
		AppMetadata:  map[string]any{"role": RoleSpecialist},
		UserMetadata: map[string]any{"role": RoleAdmin},
	}
	// Backend-assigned app metadata must win over user-editable metadata.
	if got := i.MetadataRole(); got != RoleSpecialist {
		t.Fatalf("MetadataRole = %q, want %q", got, RoleSpecialist)
	}

	i.AppMetadata = nil
	if got := i.MetadataRole(); got != RoleAdmin {
		t.Fatalf("MetadataRole = %q, want %q", got, RoleAdmin)
	}

	i.UserMetadata = nil
	i.Role = RoleUser
	if got := i.MetadataRole(); got != RoleUser {
		t.Fatalf("MetadataRole = %q, want %q", got, RoleUser)
	}
}
