package middleware

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"lawsearch/internal/platform/metrics"
	"lawsearch/pkg/requestcontext"
)

const basicRealm = `Basic realm="Secure Area"`

// IPAllowlist admits requests whose client IP matches one of its entries.
type IPAllowlist struct {
	addrs    map[netip.Addr]struct{}
	prefixes []netip.Prefix
}

// ParseIPAllowlist parses addresses ("10.0.0.1") and CIDR prefixes
// ("192.168.1.0/24"). Blank entries are skipped.
func ParseIPAllowlist(entries []string) (*IPAllowlist, error) {
	list := &IPAllowlist{addrs: make(map[netip.Addr]struct{})}
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid allow-list prefix %q: %w", entry, err)
			}
			list.prefixes = append(list.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid allow-list address %q: %w", entry, err)
		}
		list.addrs[addr.Unmap()] = struct{}{}
	}
	return list, nil
}

// Empty reports whether the list has no entries, which disables the gate.
func (l *IPAllowlist) Empty() bool {
	return l == nil || (len(l.addrs) == 0 && len(l.prefixes) == 0)
}

// Allows reports whether ip is admitted. Unparseable input is never admitted.
func (l *IPAllowlist) Allows(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	if _, ok := l.addrs[addr]; ok {
		return true
	}
	for _, prefix := range l.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// RequireAllowedIP rejects clients outside the allow-list with 403.
// An empty allow-list admits everyone.
func RequireAllowedIP(list *IPAllowlist, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if list.Empty() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := requestcontext.ClientIP(ctx)
			if !list.Allows(ip) {
				logger.WarnContext(ctx, "access denied - client ip not allowed",
					"request_id", requestcontext.RequestID(ctx),
					"client_ip", ip,
				)
				m.IncrementAccessDenied("ip_allowlist")
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte("access denied: requests are only accepted from allowed IP addresses"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BasicCredentials is the single account admitted by RequireBasicAuth.
// PasswordHash (bcrypt) takes precedence over Password.
type BasicCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

func (c BasicCredentials) enabled() bool {
	return c.Username != "" && (c.Password != "" || c.PasswordHash != "")
}

func (c BasicCredentials) matches(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.Username)) == 1
	var passOK bool
	if c.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pass)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(c.Password)) == 1
	}
	return userOK && passOK
}

// RequireBasicAuth challenges with HTTP Basic authentication when credentials
// are configured and records the viewer on success. Without credentials every
// request proceeds as an anonymous viewer.
func RequireBasicAuth(creds BasicCredentials, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			viewer := requestcontext.Viewer{
				AuthMethod: requestcontext.AuthMethodNone,
				ClientIP:   requestcontext.ClientIP(ctx),
			}

			if creds.enabled() {
				user, pass, ok := r.BasicAuth()
				if !ok {
					m.IncrementAccessDenied("basic_auth")
					writeChallenge(w, "authentication required")
					return
				}
				if !creds.matches(user, pass) {
					logger.WarnContext(ctx, "unauthorized access - invalid basic credentials",
						"request_id", requestcontext.RequestID(ctx),
						"client_ip", viewer.ClientIP,
					)
					m.IncrementAccessDenied("basic_auth")
					writeChallenge(w, "authentication failed")
					return
				}
				viewer.Username = user
				viewer.AuthMethod = requestcontext.AuthMethodBasic
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithViewer(ctx, viewer)))
		})
	}
}

func writeChallenge(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", basicRealm)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(msg))
}
