package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{
			name:    "白名单为空放行",
			origin:  "https://anything.example.com",
			allowed: nil,
			want:    true,
		},
		{
			name:    "白名单为空连空 Origin 也放行",
			origin:  "",
			allowed: []string{},
			want:    true,
		},
		{
			name:    "精确命中",
			origin:  "https://example.com",
			allowed: []string{"example.com"},
			want:    true,
		},
		{
			name:    "协议不参与比较",
			origin:  "http://example.com",
			allowed: []string{"example.com"},
			want:    true,
		},
		{
			name:    "端口不参与比较",
			origin:  "https://example.com:8080",
			allowed: []string{"example.com"},
			want:    true,
		},
		{
			name:    "大小写不敏感",
			origin:  "https://Example.COM",
			allowed: []string{"example.com"},
			want:    true,
		},
		{
			name:    "子域名不算命中",
			origin:  "https://app.example.com",
			allowed: []string{"example.com"},
			want:    false,
		},
		{
			name:    "父域名不算命中",
			origin:  "https://example.com",
			allowed: []string{"app.example.com"},
			want:    false,
		},
		{
			name:    "多个域名里命中一个",
			origin:  "https://b.com",
			allowed: []string{"a.com", "b.com", "c.com"},
			want:    true,
		},
		{
			name:    "不在名单里",
			origin:  "https://evil.com",
			allowed: []string{"example.com"},
			want:    false,
		},
		{
			name:    "有白名单时空 Origin 拒绝",
			origin:  "",
			allowed: []string{"example.com"},
			want:    false,
		},
		{
			name:    "裸域名也能比对",
			origin:  "example.com",
			allowed: []string{"example.com"},
			want:    true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, originAllowed(tc.origin, tc.allowed))
		})
	}
}
