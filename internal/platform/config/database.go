package config

import (
	"net"
	"net/url"
	"strconv"
)

// DSN assembles a postgres:// connection URL. The password is percent-encoded
// by url.UserPassword, so it may contain any characters.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}
	return u.String()
}
