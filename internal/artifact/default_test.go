package artifact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		coords     string
		expectErr  bool
		group      string
		artifactID string
		extension  string
		classifier string
		version    string
	}{
		{
			name:       "group artifact version",
			coords:     "g:a:1.0",
			group:      "g",
			artifactID: "a",
			extension:  "jar",
			classifier: "",
			version:    "1.0",
		},
		{
			name:       "with extension",
			coords:     "g:a:pom:1.0",
			group:      "g",
			artifactID: "a",
			extension:  "pom",
			version:    "1.0",
		},
		{
			name:       "with extension and classifier",
			coords:     "g:a:zip:tests:1.0",
			group:      "g",
			artifactID: "a",
			extension:  "zip",
			classifier: "tests",
			version:    "1.0",
		},
		{
			name:       "empty extension falls back to jar",
			coords:     "g:a::1.0",
			group:      "g",
			artifactID: "a",
			extension:  "jar",
			version:    "1.0",
		},
		{
			name:       "empty extension with classifier",
			coords:     "g:a::sources:1.0",
			group:      "g",
			artifactID: "a",
			extension:  "jar",
			classifier: "sources",
			version:    "1.0",
		},
		{name: "error - missing version", coords: "g:a", expectErr: true},
		{name: "error - empty string", coords: "", expectErr: true},
		{name: "error - too many segments", coords: "g:a:b:c:d:1.0", expectErr: true},
		{name: "error - whitespace", coords: "g:a b:1.0", expectErr: true},
		{name: "error - empty group", coords: ":a:1.0", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Parse(tc.coords, nil)

			if tc.expectErr {
				require.Error(t, err)
				assert.Nil(t, a)
				assert.True(t, errors.Is(err, ErrBadCoordinates))
				assert.Contains(t, err.Error(), tc.coords)
				assert.Contains(t, err.Error(), CoordinateFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.group, a.GroupID())
			assert.Equal(t, tc.artifactID, a.ArtifactID())
			assert.Equal(t, tc.extension, a.Extension())
			assert.Equal(t, tc.classifier, a.Classifier())
			assert.Equal(t, tc.version, a.Version())
			assert.Equal(t, "", a.Storage())
			assert.NotNil(t, a.Properties())
			assert.Empty(t, a.Properties())
		})
	}
}

func TestParse_CopiesProperties(t *testing.T) {
	props := map[string]string{"k": "v"}
	a, err := Parse("g:a:1.0", props)
	require.NoError(t, err)

	props["k"] = "changed"
	assert.Equal(t, "v", a.Property("k", ""))

	got := a.Properties()
	got["k"] = "mutated"
	assert.Equal(t, "v", a.Property("k", ""), "Properties must return a copy")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-coordinates") })
	assert.NotPanics(t, func() { MustParse("g:a:1.0") })
}

func TestNew_TypeDefaults(t *testing.T) {
	testJar := &Type{
		ID:         "test-jar",
		Classifier: "tests",
		Extension:  "jar",
		Properties: map[string]string{"language": "java", "type": "test-jar"},
	}

	t.Run("type supplies classifier and extension", func(t *testing.T) {
		a := New("g", "a", "1.0", WithType(testJar))
		assert.Equal(t, "tests", a.Classifier())
		assert.Equal(t, "jar", a.Extension())
		assert.Equal(t, "java", a.Property("language", ""))
	})

	t.Run("explicit values win over type", func(t *testing.T) {
		a := New("g", "a", "1.0", WithType(testJar), WithClassifier(""), WithExtension("zip"))
		assert.Equal(t, "", a.Classifier())
		assert.Equal(t, "zip", a.Extension())
	})

	t.Run("explicit properties dominate type properties", func(t *testing.T) {
		a := New("g", "a", "1.0", WithType(testJar), WithProperties(map[string]string{"language": "kotlin"}))
		assert.Equal(t, "kotlin", a.Property("language", ""))
		assert.Equal(t, "test-jar", a.Property("type", ""))
	})

	t.Run("no type and no explicit values", func(t *testing.T) {
		a := New("", "", "")
		assert.Equal(t, "", a.GroupID())
		assert.Equal(t, "", a.Classifier())
		assert.Equal(t, "", a.Extension())
		assert.NotNil(t, a.Properties())
		assert.Empty(t, a.Properties())
	})
}

func TestDefault_SettersPreserveIdentity(t *testing.T) {
	a := New("g", "a", "1.0", WithExtension("jar"), WithStorage("/repo/a.jar"), WithProperties(map[string]string{"k": "v"}))

	assert.Same(t, a, a.SetVersion("1.0"))
	assert.Same(t, a, a.SetStorage("/repo/a.jar"))
	assert.Same(t, a, a.SetProperties(map[string]string{"k": "v"}))

	empty := New("g", "a", "1.0")
	assert.Same(t, empty, empty.SetProperties(nil))
	assert.Same(t, empty, empty.SetProperties(map[string]string{}))
}

func TestDefault_SettersCopyOnChange(t *testing.T) {
	a := New("g", "a", "1.0", WithClassifier("cls"), WithExtension("zip"), WithStorage("/repo/a.zip"))

	v2 := a.SetVersion("2.0")
	require.NotSame(t, a, v2)
	assert.Equal(t, "1.0", a.Version(), "receiver must not change")
	assert.Equal(t, "2.0", v2.Version())
	assert.Equal(t, "cls", v2.Classifier())
	assert.Equal(t, "zip", v2.Extension())
	assert.Equal(t, "/repo/a.zip", v2.Storage())

	stored := a.SetStorage("/other")
	assert.Equal(t, "/repo/a.zip", a.Storage())
	assert.Equal(t, "/other", stored.Storage())
	assert.Equal(t, "1.0", stored.Version())

	withProps := a.SetProperties(map[string]string{"x": "y"})
	assert.Empty(t, a.Properties())
	assert.Equal(t, map[string]string{"x": "y"}, withProps.Properties())
}

func TestSnapshot(t *testing.T) {
	testCases := []struct {
		version     string
		snapshot    bool
		baseVersion string
	}{
		{version: "1.0", snapshot: false, baseVersion: "1.0"},
		{version: "1.0-SNAPSHOT", snapshot: true, baseVersion: "1.0-SNAPSHOT"},
		{version: "1.0-20240102.030405-6", snapshot: true, baseVersion: "1.0-SNAPSHOT"},
		{version: "20240102.030405-6", snapshot: true, baseVersion: "SNAPSHOT"},
		{version: "[1.0,2.0)", snapshot: false, baseVersion: "[1.0,2.0)"},
		{version: "", snapshot: false, baseVersion: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.version, func(t *testing.T) {
			a := New("g", "a", tc.version)
			assert.Equal(t, tc.snapshot, a.IsSnapshot())
			assert.Equal(t, tc.baseVersion, a.BaseVersion())
		})
	}
}

func TestEqualAndKey(t *testing.T) {
	a := MustParse("g:a:jar:cls:1.0")
	b := New("g", "a", "1.0", WithClassifier("cls"), WithExtension("jar"), WithProperties(map[string]string{"ignored": "yes"}))

	assert.True(t, Equal(a, b), "properties do not take part in equality")
	assert.Equal(t, KeyOf(a), KeyOf(b))

	assert.False(t, Equal(a, a.SetStorage("/repo/a.jar")))
	assert.False(t, Equal(a, a.SetVersion("2.0")))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))

	seen := map[Key]struct{}{KeyOf(a): {}}
	_, ok := seen[KeyOf(b)]
	assert.True(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "g:a:jar:1.0", MustParse("g:a:1.0").String())
	assert.Equal(t, "g:a:zip:tests:1.0", MustParse("g:a:zip:tests:1.0").String())
	assert.Equal(t, "g:a:zip:tests:1.0", KeyOf(MustParse("g:a:zip:tests:1.0")).String())
}
