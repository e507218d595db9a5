package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid verifica que el dominio del correo exista de verdad:
// primero registros MX y, como fallback, resolución A/AAAA. Un dominio
// sin MX pero con IP todavía puede recibir correo.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	_, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
