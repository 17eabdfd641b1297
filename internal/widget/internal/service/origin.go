package service

import (
	"net/url"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// originAllowed 域名白名单检查。
// 白名单为空放行一切；否则 Origin 的 host 要和某个配置域名完全相等，
// 协议和端口都不参与比较
func originAllowed(origin string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	host := originHost(origin)
	if host == "" {
		return false
	}
	_, ok := slice.Find(allowed, func(src string) bool {
		return strings.ToLower(src) == host
	})
	return ok
}

func originHost(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		// 裸域名，比如 Origin: example.com
		host, _, _ = strings.Cut(origin, ":")
	}
	return strings.ToLower(host)
}
