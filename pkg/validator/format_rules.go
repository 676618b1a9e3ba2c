package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// international format with optional leading plus
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// EmailAddress accepts addresses parseable by net/mail whose domain has at
// least one dot and no empty labels.
func EmailAddress() Rule[string] {
	return check(validEmail, "must be a valid email address")
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL accepts absolute URLs with a scheme and a host.
func URL() Rule[string] {
	return check(func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}
		u, err := url.ParseRequestURI(v)
		return err == nil && u.Scheme != "" && u.Host != ""
	}, "must be a valid URL")
}

// IP accepts IPv4 and IPv6 addresses.
func IP() Rule[string] {
	return check(func(v string) bool { return net.ParseIP(v) != nil }, "must be a valid IP address")
}

// Phone accepts E.164-like numbers. Spaces and dashes are ignored.
func Phone() Rule[string] {
	return check(func(v string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(v)
		return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	}, "must be a valid phone number in international format")
}
