package visibility

import "testing"

func TestFromCaller(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		isAdmin       bool
		want          Level
	}{
		{name: "anonymous", authenticated: false, isAdmin: false, want: Anonymous},
		{name: "authenticated", authenticated: true, isAdmin: false, want: Authenticated},
		{name: "admin", authenticated: true, isAdmin: true, want: Admin},
		{name: "admin flag without auth is anonymous", authenticated: false, isAdmin: true, want: Anonymous},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromCaller(tc.authenticated, tc.isAdmin); got != tc.want {
				t.Fatalf("FromCaller(%v, %v) = %v, want %v", tc.authenticated, tc.isAdmin, got, tc.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	if !Admin.AtLeast(Authenticated) {
		t.Fatal("admin should satisfy authenticated")
	}
	if !Authenticated.AtLeast(Anonymous) {
		t.Fatal("authenticated should satisfy anonymous")
	}
	if Anonymous.AtLeast(Authenticated) {
		t.Fatal("anonymous must not satisfy authenticated")
	}
}
