package domain_test

import (
	"errors"
	"testing"

	"github.com/highcard-dev/companion/internal/core/domain"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		baseline  string
		want      bool
	}{
		{"major higher", "2.0.0", "1.0.0", true},
		{"minor higher", "1.1.0", "1.0.0", true},
		{"patch higher", "1.0.1", "1.0.0", true},
		{"equal", "1.0.0", "1.0.0", false},
		{"patch lower", "1.0.0", "1.0.1", false},
		{"major lower", "0.9.0", "1.0.0", false},
		{"numeric not lexical core", "1.10.0", "1.9.0", true},

		{"stable beats prerelease of same core", "1.0.0", "1.0.0-preview.1", true},
		{"prerelease older than stable of same core", "1.0.0-preview.1", "1.0.0", false},
		{"higher core prerelease beats lower stable", "1.1.0-preview.1", "1.0.0", true},
		{"later prerelease", "1.0.0-preview.2", "1.0.0-preview.1", true},
		{"earlier prerelease", "1.0.0-preview.1", "1.0.0-preview.2", false},
		{"equal prerelease", "1.0.0-preview.1", "1.0.0-preview.1", false},
		{"numeric identifiers compare as integers", "1.0.0-preview.10", "1.0.0-preview.9", true},
		{"alphanumeric compared lexically", "1.0.0-beta.1", "1.0.0-alpha.1", true},
		{"alphanumeric compared lexically reverse", "1.0.0-alpha.1", "1.0.0-beta.1", false},
		{"alphanumeric beats numeric", "1.0.0-alpha", "1.0.0-1", true},
		{"numeric never beats alphanumeric", "1.0.0-1", "1.0.0-alpha", false},
		{"longer sequence wins on prefix", "1.0.0-alpha.1", "1.0.0-alpha", true},
		{"shorter sequence loses on prefix", "1.0.0-alpha", "1.0.0-alpha.1", false},
		{"timestamp identifiers", "0.66.0-preview.20260228140000.abc1234", "0.66.0-preview.20260228120000.def5678", true},

		{"same core preview is not newer than stable", "0.68.0-preview.20260301120000.abc1234", "0.68.0", false},
		{"patch bumped preview is newer than stable", "0.68.1-preview.20260301120000.abc1234", "0.68.0", true},
		{"later timestamp preview", "0.68.1-preview.20260301140000.abc1234", "0.68.1-preview.20260301120000.def5678", true},
		{"stable at preview core supersedes preview", "0.68.1-preview.20260301120000.abc1234", "0.68.1", false},
		{"higher stable beats older core preview", "0.69.0", "0.68.1-preview.20260301120000.abc1234", true},

		{"build metadata ignored", "1.0.0+build.2", "1.0.0+build.1", false},

		{"numeric identifiers beyond uint64", "1.0.0-100000000000000000000", "1.0.0-99999999999999999999", true},
		{"numeric identifiers beyond uint64 reverse", "1.0.0-99999999999999999999", "1.0.0-100000000000000000000", false},
		{"same length numeric identifiers beyond uint64", "1.0.0-rc.123456789012345678902", "1.0.0-rc.123456789012345678901", true},
		{"huge numeric still below alphanumeric", "1.0.0-123456789012345678901234", "1.0.0-a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.IsNewer(tt.candidate, tt.baseline)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.candidate, tt.baseline, got, tt.want)
			}
		})
	}
}

func TestIsNewer_EqualIsNeverNewer(t *testing.T) {
	versions := []string{"0.0.0", "1.2.3", "10.20.30", "1.0.0-rc.1", "1.0.0-0.3.7", "1.0.0-x-y-z.--"}

	for _, v := range versions {
		newer, err := domain.IsNewer(v, v)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", v, err)
		}
		if newer {
			t.Errorf("Expected %q not to be newer than itself", v)
		}
	}
}

func TestIsNewer_StableAlwaysOutranksSameCorePrerelease(t *testing.T) {
	prereleases := []string{"alpha", "0", "preview.20260301120000.abc1234", "zzz.999", "rc-1"}

	for _, pre := range prereleases {
		stable := "3.4.5"
		pr := stable + "-" + pre

		newer, err := domain.IsNewer(stable, pr)
		if err != nil || !newer {
			t.Errorf("Expected %s to be newer than %s (err: %v)", stable, pr, err)
		}
		newer, err = domain.IsNewer(pr, stable)
		if err != nil || newer {
			t.Errorf("Expected %s not to be newer than %s (err: %v)", pr, stable, err)
		}
	}
}

func TestIsNewer_ParseError(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		baseline  string
	}{
		{"empty candidate", "", "1.0.0"},
		{"empty baseline", "1.0.0", ""},
		{"non numeric core", "1.x.0", "1.0.0"},
		{"missing patch", "1.0", "1.0.0"},
		{"leading v", "v1.0.0", "1.0.0"},
		{"garbage", "latest", "1.0.0"},
		{"leading zero core", "01.0.0", "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newer, err := domain.IsNewer(tt.candidate, tt.baseline)
			if err == nil {
				t.Fatalf("Expected parse error for (%q, %q)", tt.candidate, tt.baseline)
			}
			var parseErr *domain.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Expected *domain.ParseError, got %T", err)
			}
			if newer {
				t.Error("Expected newer to be false on parse error")
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	v, err := domain.ParseVersion("0.68.1-preview.20260301120000.abc1234")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if v.Major() != 0 || v.Minor() != 68 || v.Patch() != 1 {
		t.Errorf("Unexpected core %d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}
	pre := v.Prerelease()
	if len(pre) != 3 || pre[0] != "preview" || pre[1] != "20260301120000" || pre[2] != "abc1234" {
		t.Errorf("Unexpected prerelease identifiers %v", pre)
	}
	if v.IsStable() {
		t.Error("Expected prerelease version not to be stable")
	}
	if v.String() != "0.68.1-preview.20260301120000.abc1234" {
		t.Errorf("Expected original string, got %s", v.String())
	}

	stable, err := domain.ParseVersion("1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	if !stable.IsStable() || stable.Prerelease() != nil {
		t.Error("Expected 1.2.3 to be stable with no identifiers")
	}
	if stable.Compare(v) != 1 || v.Compare(stable) != -1 || stable.Compare(stable) != 0 {
		t.Error("Unexpected Compare results")
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0+build.1", "1.0.0+build.2", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-1", "1.0.0-alpha", -1},
		{"1.0.0", "1.0.0-rc.1", 1},
	}

	for _, tt := range tests {
		got, err := domain.CompareVersions(tt.a, tt.b)
		if err != nil {
			t.Fatalf("CompareVersions(%q, %q) unexpected error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := domain.CompareVersions("1.0", "1.0.0"); err == nil {
		t.Error("Expected error for invalid version")
	}
}
