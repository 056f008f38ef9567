package cache

import "testing"

func TestPrefixKey(t *testing.T) {
	cases := []struct {
		prefix Prefix
		id     string
		want   string
	}{
		{CachedPage, "http://example.test", "cache:http://example.test"},
		{AccessCount, "http://example.test", "count:http://example.test"},
		{AccessCount, "a:b", "count:a:b"},
	}

	for _, c := range cases {
		if got := c.prefix.Key(c.id); got != c.want {
			t.Errorf("%s.Key(%q) = %q, want %q", c.prefix, c.id, got, c.want)
		}
	}
}
