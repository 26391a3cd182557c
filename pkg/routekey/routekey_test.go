package routekey

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate("/signin"); err != nil {
		t.Errorf("absolute route rejected: %v", err)
	}
	if err := Validate("/"); err != nil {
		t.Errorf("root route rejected: %v", err)
	}
	for _, route := range []string{"signin", "", "signin/", "./signin"} {
		if err := Validate(route); err == nil {
			t.Errorf("Validate(%q) = nil, want error", route)
		}
	}
}

func TestForRoute(t *testing.T) {
	tests := []struct {
		route, slug, want string
	}{
		{"/signin", "signin", "signin/[[...signin]]/index"},
		{"/signup", "signup", "signup/[[...signup]]/index"},
		{"/auth/login", "signin", "auth/login/[[...signin]]/index"},
		{"/", "signin", "/[[...signin]]/index"},
	}
	for _, tt := range tests {
		if got := ForRoute(tt.route, tt.slug); got != tt.want {
			t.Errorf("ForRoute(%q, %q) = %q, want %q", tt.route, tt.slug, got, tt.want)
		}
	}
}

func TestBase(t *testing.T) {
	base, ok := Base("signin/[[...signin]]/index")
	if !ok || base != "signin" {
		t.Errorf("Base = %q, %v, want %q, true", base, ok, "signin")
	}

	base, ok = Base("auth/login/[[...signin]]/index")
	if !ok || base != "auth/login" {
		t.Errorf("Base = %q, %v, want %q, true", base, ok, "auth/login")
	}

	if _, ok := Base("plain/index"); ok {
		t.Error("non catch-all key should not parse")
	}
}

func TestMatch(t *testing.T) {
	key := "signin/[[...signin]]/index"

	matching := []string{"/signin", "/signin/", "/signin/factor-two", "/signin/sso-callback/x"}
	for _, path := range matching {
		if !Match(key, path) {
			t.Errorf("Match(%q, %q) = false, want true", key, path)
		}
	}

	nonMatching := []string{"/", "/signup", "/signinx", "/sign"}
	for _, path := range nonMatching {
		if Match(key, path) {
			t.Errorf("Match(%q, %q) = true, want false", key, path)
		}
	}
}

func TestMatchNestedRoute(t *testing.T) {
	key := ForRoute("/auth/login", "signin")

	if !Match(key, "/auth/login") || !Match(key, "/auth/login/verify") {
		t.Error("nested route should match itself and sub-paths")
	}
	if Match(key, "/auth") || Match(key, "/auth/logout") {
		t.Error("nested route should not match siblings or parents")
	}
}

func TestMatchRootRoute(t *testing.T) {
	key := ForRoute("/", "signin")

	for _, path := range []string{"/", "/anything", "/a/b/c"} {
		if !Match(key, path) {
			t.Errorf("root catch-all should match %q", path)
		}
	}
}
