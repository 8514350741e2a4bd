package links

import (
	"errors"
	"net/netip"
	"regexp"
	"strings"
)

var errInvalidIPv6 = errors.New("invalid IPv6 URL")

var futureIPLiteral = regexp.MustCompile(`^v[a-fA-F0-9]+\..+$`)

// Schemes whose last path segment may carry ;params.
var paramSchemes = map[string]bool{
	"": true, "ftp": true, "hdl": true, "prospero": true, "http": true,
	"imap": true, "https": true, "shttp": true, "rtsp": true, "rtsps": true,
	"rtspu": true, "sip": true, "sips": true, "mms": true, "sftp": true,
	"tel": true,
}

// urlParts holds the components of a split URL. Nothing is decoded or
// validated beyond bracketed hosts, so percent signs, non-numeric ports and
// userinfo pass through as written.
type urlParts struct {
	scheme   string
	netloc   string
	path     string
	query    string
	fragment string
}

// splitURL splits raw into scheme, network location, path, query and
// fragment. It only fails on an unbalanced or malformed bracketed host.
func splitURL(raw string) (urlParts, error) {
	var parts urlParts

	raw = strings.TrimLeftFunc(raw, func(r rune) bool { return r <= ' ' })
	raw = strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(raw)

	if i := strings.IndexByte(raw, ':'); i > 0 && isSchemeName(raw[:i]) {
		parts.scheme = strings.ToLower(raw[:i])
		raw = raw[i+1:]
	}

	if strings.HasPrefix(raw, "//") {
		rest := raw[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}

		parts.netloc, raw = rest[:end], rest[end:]

		if err := checkBracketedHost(parts.netloc); err != nil {
			return urlParts{}, err
		}
	}

	raw, parts.fragment, _ = strings.Cut(raw, "#")
	raw, parts.query, _ = strings.Cut(raw, "?")

	if paramSchemes[parts.scheme] {
		raw = stripParams(raw)
	}

	parts.path = raw

	return parts, nil
}

func isSchemeName(s string) bool {
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}

	return true
}

// stripParams drops ;params from the last path segment.
func stripParams(path string) string {
	from := strings.LastIndexByte(path, '/')
	if from < 0 {
		from = 0
	}

	if i := strings.IndexByte(path[from:], ';'); i >= 0 {
		return path[:from+i]
	}

	return path
}

func checkBracketedHost(netloc string) error {
	open := strings.Contains(netloc, "[")
	closed := strings.Contains(netloc, "]")

	if open != closed {
		return errInvalidIPv6
	}

	if !open {
		return nil
	}

	_, host, _ := strings.Cut(netloc, "[")
	host, _, _ = strings.Cut(host, "]")

	if strings.HasPrefix(host, "v") {
		if !futureIPLiteral.MatchString(host) {
			return errInvalidIPv6
		}

		return nil
	}

	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Is6() {
		return errInvalidIPv6
	}

	return nil
}
